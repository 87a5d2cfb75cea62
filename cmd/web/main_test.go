package main

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	tests := []struct {
		port string
		want string
	}{
		{"2222", "ssh -t -p 2222 play.example.com"},
		{"22", "ssh -t play.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			page := renderPage(htmlPage, "play.example.com", tt.port)
			if !strings.Contains(page, tt.want) {
				t.Errorf("page does not contain %q", tt.want)
			}
			if strings.Contains(page, "{{.") {
				t.Error("page still has placeholders")
			}
		})
	}
}
