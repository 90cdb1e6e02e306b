package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/studentcheck/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{in: "production", want: environment.Production},
		{in: "PROD", want: environment.Production},
		{in: " staging ", want: environment.Staging},
		{in: "stage", want: environment.Staging},
		{in: "development", want: environment.Development},
		{in: "dev", want: environment.Development},
		{in: "", want: environment.Development},
		{in: "qa", want: environment.Development},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, environment.Parse(tt.in), tt.in)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, environment.Environment(""), environment.FromContext(ctx))
	assert.False(t, environment.IsProduction(ctx))

	tests := []struct {
		env                  environment.Environment
		prod, staging, devel bool
	}{
		{env: environment.Production, prod: true},
		{env: environment.Staging, staging: true},
		{env: environment.Development, devel: true},
	}

	for _, tt := range tests {
		ctx := environment.WithContext(context.Background(), tt.env)
		assert.Equal(t, tt.env, environment.FromContext(ctx))
		assert.Equal(t, tt.prod, environment.IsProduction(ctx))
		assert.Equal(t, tt.staging, environment.IsStaging(ctx))
		assert.Equal(t, tt.devel, environment.IsDevelopment(ctx))
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(environment.WithContext(context.Background(), environment.Staging))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "staging", attr.Value.String())
}
