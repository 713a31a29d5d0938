package sigfmt

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt/format"
)

func TestOptionsFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Config
	}{
		{"empty", "", DefaultConfig()},
		{
			name:  "vb with tokens",
			query: "dialect=vb&tokens=true",
			want:  Config{Dialect: format.VisualBasic, Options: DefaultOptions | Tokens, Locale: language.Und},
		},
		{
			name:  "clear defaults",
			query: "namespaces=false&keywords=false&decimal=false",
			want:  Config{Dialect: format.CSharp, Options: 0, Locale: language.Und},
		},
		{
			name:  "locale and sizes",
			query: "locale=de&arraysizes=1&separators=true",
			want:  Config{Dialect: format.CSharp, Options: DefaultOptions | ShowArrayValueSizes | DigitSeparators, Locale: language.German},
		},
		{"unknown keys ignored", "color=always", DefaultConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, err := OptionsFromQuery(q)
			require.NoError(t, err)
			require.Equal(t, tt.want.Dialect, got.Dialect)
			require.Equal(t, tt.want.Options, got.Options)
			require.Equal(t, tt.want.Locale.String(), got.Locale.String())
		})
	}
}

func TestOptionsFromQuery_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"dialect", "dialect=fsharp", "Dialect"},
		{"locale", "locale=not_a_tag!", "Locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			_, err = OptionsFromQuery(q)
			var sfErr *Error
			require.True(t, errors.As(err, &sfErr), "err = %v", err)
			require.Equal(t, CodeInvalidArgument, sfErr.Code)
			require.Contains(t, sfErr.Details, tt.wantField)
		})
	}

	t.Run("bad boolean", func(t *testing.T) {
		_, err := OptionsFromQuery(url.Values{"tokens": {"maybe"}})
		var sfErr *Error
		require.True(t, errors.As(err, &sfErr))
		require.Equal(t, CodeInvalidArgument, sfErr.Code)
	})
}

func TestParseOptionsReexport(t *testing.T) {
	got, err := ParseOptions("tokens,namespaces")
	require.NoError(t, err)
	require.Equal(t, Tokens|Namespaces, got)
}
