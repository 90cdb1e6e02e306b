package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated environment.
func execute(t *testing.T, env map[string]string, stdin string, args ...string) (string, string, error) {
	t.Helper()

	if env == nil {
		env = map[string]string{}
	}
	var stdout, stderr bytes.Buffer
	c := newCLI(strings.NewReader(stdin), &stdout, &stderr, env)
	cmd := newRootCommand(c)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCPFCheck(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, nil, "", "cpf", "check", "529.982.247-25", "12345678909")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25: válido\n123.456.789-09: válido\n", out)

	out, _, err = execute(t, nil, "", "cpf", "check", "11111111111", "12345678900", "123")
	require.ErrorIs(t, err, errInvalidData)
	assert.Equal(t, strings.Join([]string{
		"11111111111: inválido (todos os dígitos iguais)",
		"12345678900: inválido (dígitos verificadores não conferem)",
		"123: inválido (deve ter 11 dígitos)",
	}, "\n")+"\n", out)

	_, _, err = execute(t, nil, "", "cpf", "check")
	assert.Error(t, err)
}

func TestCPFCheck_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, nil, "", "--output", "json", "cpf", "check", "52998224725", "11111111111")
	require.ErrorIs(t, err, errInvalidData)

	var results []cpfResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, cpfResult{Input: "52998224725", Formatted: "529.982.247-25", Valid: true}, results[0])
	assert.False(t, results[1].Valid)
	assert.Equal(t, "todos os dígitos iguais", results[1].Reason)
}

func TestCPFDigits(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, nil, "", "--locale", "en", "cpf", "digits", "123456789", "529.982.247")
	require.NoError(t, err)
	assert.Equal(t,
		"Check digits of 123456789: 09 (123.456.789-09)\n"+
			"Check digits of 529.982.247: 25 (529.982.247-25)\n",
		out,
	)

	out, _, err = execute(t, nil, "", "--locale", "en", "cpf", "digits", "12345")
	require.ErrorIs(t, err, errInvalidData)
	assert.Equal(t, "12345: invalid (base must have 9 digits)\n", out)
}

func TestDemo_Text(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, nil, "", "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"=== DEMONSTRAÇÃO DE VALIDAÇÃO ===",
		"1. Testando Nome inválido:\n  Nome válido? não\n  - Nome não pode ser vazio\n",
		"2. Testando Nome válido:\n  Nome: João Silva\n  Nome válido? sim\n",
		"3. Testando Email inválido:\n  Email válido? não\n  - Email inválido\n  - Formato de email inválido\n",
		"5. Testando CPF inválido:\n  CPF válido? não\n  - CPF inválido\n",
		"  Estudante válido? não\n  - Nome inválido: Nome não pode ser vazio",
		"  - CPF inválido: CPF deve ter 11 dígitos, CPF inválido\n",
		"  - Propriedade: Document\n    Erro: CPF inválido: CPF não pode ter todos os dígitos iguais\n    Tentativa de valor: 11111111111\n",
		"Total de estudantes: 3\nVálidos: 2\nInválidos: 1\n",
		"Cenário 6: Tudo válido:\n  Estudante válido? sim\n",
		"Cenário 1: Tudo vazio:\n  Estudante válido? não\n  Erros (3):\n",
		"Formato JSON para API:\n{\n  \"success\": false,",
		"=== FIM DA DEMONSTRAÇÃO ===",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "e mais")
}

func TestDemo_English(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, map[string]string{"STUDENTCHECK_LOCALE": "en"}, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Testing an invalid Name:\n  Name valid? no\n  - First name must not be empty\n")
	assert.Contains(t, out, "=== END OF DEMO ===")
}

func TestDemo_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, map[string]string{"STUDENTCHECK_OUTPUT": "json"}, "", "demo")
	require.NoError(t, err)

	var entries []demoEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(scenarios))
	assert.Equal(t, "Cenário 1: Tudo vazio", entries[0].Title)
	assert.False(t, entries[0].Response.Success)
	assert.Len(t, entries[0].Response.Errors, 3)
	assert.True(t, entries[5].Details.Valid)
	assert.Zero(t, entries[5].TotalErrors)
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, nil, "", "catalog", "en")
	require.NoError(t, err)

	var catalog map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))
	require.Contains(t, catalog, "en")
	assert.Contains(t, catalog["en"], "fields")
	assert.Contains(t, catalog["en"], "cli")

	out, _, err = execute(t, nil, "", "catalog")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"pt-BR\": {"))
}

func TestLocalesDirOverride(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, map[string]string{"STUDENTCHECK_LOCALES_DIR": "testdata/locales"}, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "  - Email mal formado\n")
	assert.NotContains(t, out, "Formato de email inválido")
}

func TestInvalidSettings(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, nil, "", "--output", "xml", "demo")
	assert.ErrorIs(t, err, errUnknownOutput)

	_, _, err = execute(t, map[string]string{"LOG_LEVEL": "loud"}, "", "demo")
	assert.ErrorIs(t, err, errInvalidLogSettings)

	_, _, err = execute(t, map[string]string{"STUDENTCHECK_LOCALES_DIR": "testdata/missing"}, "", "demo")
	assert.Error(t, err)
}

func TestLogsGoToStderr(t *testing.T) {
	t.Parallel()

	out, logs, err := execute(t, map[string]string{"APP_ENV": "production"}, "", "cpf", "check", "12345678909")
	require.NoError(t, err)
	assert.NotContains(t, out, "level")
	assert.Empty(t, logs)

	_, logs, err = execute(t, map[string]string{"APP_ENV": "production"}, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"demo finished"`)
	assert.Contains(t, logs, `"service":"studentcheck"`)
	assert.Contains(t, logs, `"env":"production"`)
	assert.Contains(t, logs, `"locale":"pt-BR"`)
}
