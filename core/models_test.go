package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Section 302 IPC murder punishment")
		b := IDFromContent("Section 302 IPC murder punishment")
		assert.Equal(t, a, b)
		assert.Len(t, a, 16) // 8 bytes hex-encoded
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		a := IDFromContent("Section 302")
		b := IDFromContent("Article 14")
		assert.NotEqual(t, a, b)
	})
}

func TestNamespace(t *testing.T) {
	assert.True(t, NamespaceActs.IsValid())
	assert.True(t, NamespaceJudgments.IsValid())
	assert.False(t, Namespace("statutes").IsValid())
	assert.False(t, Namespace("").IsValid())

	assert.Equal(t, []Namespace{NamespaceActs, NamespaceJudgments}, Namespaces())
}

func TestValidateDocument(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := ValidateDocument(&Document{
			ID:        "d1",
			Content:   "Section 302 of the Indian Penal Code",
			Namespace: NamespaceActs,
		})
		assert.NoError(t, err)
	})

	t.Run("nil document", func(t *testing.T) {
		err := ValidateDocument(nil)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty content", func(t *testing.T) {
		err := ValidateDocument(&Document{ID: "d1", Namespace: NamespaceActs})
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("unknown namespace", func(t *testing.T) {
		err := ValidateDocument(&Document{ID: "d1", Content: "x", Namespace: "other"})
		assert.ErrorIs(t, err, ErrInvalidNamespace)
	})
}
