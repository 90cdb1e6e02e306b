package student_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studentcheck/pkg/i18n"
	"github.com/dmitrymomot/studentcheck/pkg/validator"
	"github.com/dmitrymomot/studentcheck/svc/student"
)

func TestDefaultMessages(t *testing.T) {
	t.Parallel()

	m := student.DefaultMessages()
	require.NotNil(t, m)
	assert.Equal(t, student.DefaultLanguage, m.Lang())
	assert.Same(t, m, student.DefaultMessages())
	assert.Equal(t, []string{"en", "pt-BR"}, m.Translator().SupportedLanguages())
	assert.Equal(t, "CPF", m.Label(student.FieldDocument))
	assert.Equal(t, "unknown", m.Label("unknown"))
}

func TestLoadMessages_English(t *testing.T) {
	t.Parallel()

	en, err := student.LoadMessages(context.Background(), "en_US.UTF-8", nil, i18n.WithNoLogging())
	require.NoError(t, err)
	assert.Equal(t, "en", en.Lang())

	s := student.NewStudent(
		student.NewName("", "Silva", student.WithMessages(en)),
		student.NewDocument("11111111111", student.WithMessages(en)),
		student.NewEmail("joao@exemplo.com", student.WithMessages(en)),
		student.WithMessages(en),
	)
	assert.Equal(t, []string{
		"Invalid Name: First name must not be empty, First name must have at least 2 characters, First name must contain only letters and spaces",
		"Invalid CPF: CPF must not have all digits equal",
	}, s.Errors())
	assert.Same(t, en, s.Messages())
}

func TestLoadMessages_ResolvesLanguage(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"pt", "pt_BR.UTF-8", "", "ja"} {
		m, err := student.LoadMessages(context.Background(), lang, nil, i18n.WithNoLogging())
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", m.Lang(), "lang %q", lang)
	}
}

func TestLoadMessages_Override(t *testing.T) {
	t.Parallel()

	override := &i18n.MapAdapter{Data: map[string]map[string]any{
		"pt-BR": {
			"student": map[string]any{"email_format": "Email mal formado"},
		},
	}}
	m, err := student.LoadMessages(context.Background(), "pt-BR", []i18n.TranslationAdapter{override}, i18n.WithNoLogging())
	require.NoError(t, err)

	e := student.NewEmail("teste", student.WithMessages(m))
	assert.Equal(t, []string{"Email inválido", "Email mal formado"}, e.Errors())
}

func TestMessages_Render(t *testing.T) {
	t.Parallel()

	t.Run("nil messages render defaults", func(t *testing.T) {
		t.Parallel()
		var m *student.Messages
		assert.Equal(t, "first_name is required", m.Render(validator.Required(student.FieldFirstName, "").Error))
		assert.Equal(t, "document must have 11 digits", m.Render(student.DocumentRules("1")[1].Error))
		assert.Empty(t, m.Lang())
		assert.Nil(t, m.Translator())
	})

	t.Run("missing key falls back to default message with label", func(t *testing.T) {
		t.Parallel()
		m := student.DefaultMessages()
		rule := validator.Required(student.FieldEmail, "").WithMessage("student.unknown", "is missing")
		assert.Equal(t, "Email is missing", m.Render(rule.Error))
	})

	t.Run("render all keeps order", func(t *testing.T) {
		t.Parallel()
		m := student.DefaultMessages()
		assert.Nil(t, m.RenderAll(nil))
		assert.Equal(t, []string{"CPF deve ter 11 dígitos", "CPF inválido"}, m.RenderAll(student.ValidateDocument("123")))
	})
}

func TestMessagesContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Same(t, student.DefaultMessages(), student.MessagesFromContext(ctx))

	_, ok := student.LoggerExtractor()(ctx)
	assert.False(t, ok)

	en, err := student.LoadMessages(ctx, "en", nil, i18n.WithNoLogging())
	require.NoError(t, err)
	ctx = student.ContextWithMessages(ctx, en)
	assert.Same(t, en, student.MessagesFromContext(ctx))

	attr, ok := student.LoggerExtractor()(ctx)
	require.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "en", attr.Value.String())
}
