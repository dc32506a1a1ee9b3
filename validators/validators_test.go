package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	assert.NoError(t, EmailValidator("a@x.com"))
}

func TestPasswordValidator(t *testing.T) {
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong)
	assert.NoError(t, PasswordValidator("long enough"))
}

func TestUploadFieldsValidator(t *testing.T) {
	assert.Nil(t, UploadFieldsValidator("Math", "Notes", "PDF"))

	details := UploadFieldsValidator("Math", "", "PDF")
	assert.Len(t, details, 1)
	assert.Contains(t, details, "title")

	details = UploadFieldsValidator("", "", "")
	assert.Len(t, details, 3)
	assert.Contains(t, details, "subject")
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "fileType")
}
