package scrape

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ammar944/AI-GOS-sub011/pkg/jina"
	jinamocks "github.com/ammar944/AI-GOS-sub011/pkg/jina/mocks"
)

var longContent = "# Acme Corp\n\n" + strings.Repeat("We build tools that help finance teams close the books faster. ", 5)

func TestJinaAdapter_Name(t *testing.T) {
	t.Parallel()
	adapter := NewJinaAdapter(jinamocks.NewMockClient(t))
	assert.Equal(t, "jina", adapter.Name())
	assert.True(t, adapter.Supports("https://example.com"))
}

func TestJinaAdapter_Scrape_Success(t *testing.T) {
	t.Parallel()
	client := jinamocks.NewMockClient(t)
	adapter := NewJinaAdapter(client)

	client.EXPECT().Read(mock.Anything, "https://acme.com").Return(&jina.ReadResponse{
		Code: 200,
		Data: jina.ReadData{URL: "https://acme.com", Title: "Acme Corp", Content: longContent},
	}, nil)

	result, err := adapter.Scrape(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "jina", result.Source)
	assert.Equal(t, "Acme Corp", result.Title)
	assert.Equal(t, longContent, result.Markdown)
}

func TestJinaAdapter_Scrape_ClientError(t *testing.T) {
	t.Parallel()
	client := jinamocks.NewMockClient(t)
	adapter := NewJinaAdapter(client)

	client.EXPECT().Read(mock.Anything, "https://acme.com").Return(nil, errors.New("timeout"))

	_, err := adapter.Scrape(context.Background(), "https://acme.com")
	require.Error(t, err)
}

func TestUnusableReason(t *testing.T) {
	tests := []struct {
		name string
		resp *jina.ReadResponse
		want string
	}{
		{"nil", nil, "empty response"},
		{"bad code", &jina.ReadResponse{Code: 451, Data: jina.ReadData{Content: longContent}}, "upstream status"},
		{"short", &jina.ReadResponse{Code: 200, Data: jina.ReadData{Content: "hi"}}, "too short"},
		{"challenge", &jina.ReadResponse{Code: 200, Data: jina.ReadData{Content: "Just a moment... " + strings.Repeat("x", 120)}}, "challenge page"},
		{"long page mentioning access denied", &jina.ReadResponse{Code: 200, Data: jina.ReadData{Content: "access denied " + strings.Repeat("real content ", 100)}}, ""},
		{"ok", &jina.ReadResponse{Code: 200, Data: jina.ReadData{Content: longContent}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unusableReason(tt.resp))
		})
	}
}
