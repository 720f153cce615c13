package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctxos/desktop/backend/internal/shared/id"
)

func TestValidateWindowID(t *testing.T) {
	assert.NoError(t, ValidateWindowID("win_01HZY3J6Q5Z3C8G6M4T1R9X2AB"))
	assert.NoError(t, ValidateWindowID(id.NewWindowID().String()))

	for _, bad := range []string{"", "win_missing", "terminal", "01HZY3J6Q5Z3C8G6M4T1R9X2AB", "app_01HZY3J6Q5Z3C8G6M4T1R9X2AB", "win_01HZY3J6Q5Z3C8G6M4T1R9X2A!"} {
		assert.Error(t, ValidateWindowID(bad), bad)
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "window id", id: "win_01HZY3J6Q5Z3C8G6M4T1R9X2AB"},
		{name: "app id", id: "terminal"},
		{name: "empty", id: "", wantErr: true},
		{name: "slash", id: "win/1", wantErr: true},
		{name: "space", id: "win 1", wantErr: true},
		{name: "too long", id: strings.Repeat("a", MaxIDLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id, "window_id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("ctx@os/Projects/ctx-os/README.md", "path", true))
	assert.NoError(t, ValidatePath("", "path", false))
	assert.Error(t, ValidatePath("", "path", true))
	assert.Error(t, ValidatePath("a\x00b", "path", true))
	assert.Error(t, ValidatePath("\xff", "path", true))
	assert.Error(t, ValidatePath(strings.Repeat("a", MaxPathLength+1), "path", true))
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, ValidatePattern("**/*.md"))
	assert.Error(t, ValidatePattern(""))
	assert.Error(t, ValidatePattern(strings.Repeat("*/", MaxPatternDepth+1)))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery(""))
	assert.NoError(t, ValidateQuery("readme"))
	assert.Error(t, ValidateQuery(strings.Repeat("q", MaxQueryLength+1)))
}
