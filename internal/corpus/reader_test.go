package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCardFile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []CardRecord
		wantErr string
	}{
		{
			name: "parses lines and skips blank ones",
			input: `{"from_lang":"eng","to_lang":"deu","from_id":1,"to_id":2,"from_txt":"I am tired.","original_txt":"Ich bin müde.","resulting_tokens":["{{c1::Ich}}"," ","{{c2:sein:bin}}"," ","müde","."]}

{"from_lang":"eng","to_lang":"jpn","from_id":3,"to_id":4,"from_txt":"Hello.","original_txt":"こんにちは。","resulting_tokens":["{{c1::こんにちは}}","。"]}
`,
			want: []CardRecord{
				{
					FromLang:     "eng",
					ToLang:       "deu",
					FromID:       1,
					ToID:         2,
					FromText:     "I am tired.",
					OriginalText: "Ich bin müde.",
					Tokens:       []string{"{{c1::Ich}}", " ", "{{c2:sein:bin}}", " ", "müde", "."},
				},
				{
					FromLang:     "eng",
					ToLang:       "jpn",
					FromID:       3,
					ToID:         4,
					FromText:     "Hello.",
					OriginalText: "こんにちは。",
					Tokens:       []string{"{{c1::こんにちは}}", "。"},
				},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name: "invalid json reports the line",
			input: `{"from_lang":"eng","to_lang":"deu","from_id":1,"to_id":2,"resulting_tokens":["a"]}
{not json}
`,
			wantErr: "line 2: json.Unmarshal()",
		},
		{
			name:    "malformed blank",
			input:   `{"from_lang":"eng","to_lang":"deu","from_id":1,"to_id":2,"resulting_tokens":["{{c1:Ich}}"]}`,
			wantErr: `line 1: malformed cloze token "{{c1:Ich}}"`,
		},
		{
			name:    "missing language",
			input:   `{"to_lang":"deu","from_id":1,"to_id":2,"resulting_tokens":["a"]}`,
			wantErr: "line 1: from_lang and to_lang are required",
		},
		{
			name:    "no tokens",
			input:   `{"from_lang":"eng","to_lang":"deu","from_id":1,"to_id":2,"resulting_tokens":[]}`,
			wantErr: "line 1: resulting_tokens is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCardFile(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLanguageFile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Language
		wantErr bool
	}{
		{
			name: "sorted by code",
			input: `jpn: Japanese
deu: German
eng: English
`,
			want: []Language{
				{ISO693_3: "deu", Name: "German"},
				{ISO693_3: "eng", Name: "English"},
				{ISO693_3: "jpn", Name: "Japanese"},
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  nil,
		},
		{
			name:    "two letter code",
			input:   "de: German\n",
			wantErr: true,
		},
		{
			name:    "not a map",
			input:   "- deu\n- eng\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLanguageFile(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
