package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactBody(t *testing.T) {
	body := ContactBody("Ana", "ana@example.com", "+5561999990000", "Quero saber mais sobre o serviço.")
	assert.Contains(t, body, "Name: Ana")
	assert.Contains(t, body, "Email: ana@example.com")
	assert.Contains(t, body, "Phone: +5561999990000")
	assert.Contains(t, body, "Quero saber mais sobre o serviço.")
}

func TestContactBodyWithoutPhone(t *testing.T) {
	body := ContactBody("Ana", "ana@example.com", "", "Mensagem de teste longa.")
	assert.NotContains(t, body, "Phone:")
}
