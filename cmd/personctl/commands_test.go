package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/query"
	"github.com/Payphone-Digital/roster/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuery_Table(t *testing.T) {
	out, err := run(t, "query", "--page-size", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Page 1 of 20 (100 matching)", lines[0])
	assert.Contains(t, lines[1], "STATUS")
}

func TestQuery_JSON(t *testing.T) {
	out, err := run(t, "query", "-o", "json", "--status", "Single", "--sort", "age", "--order", "asc", "--page", "50")
	require.NoError(t, err)

	var res query.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, res.TotalPages, res.Page)
	for _, p := range res.Items {
		assert.Equal(t, "Single", string(p.Status))
	}
}

func TestQuery_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero page size", []string{"query", "--page-size", "0"}, apperrors.ErrInvalidPageSize},
		{"unknown sort", []string{"query", "--sort", "name"}, apperrors.ErrUnknownSortField},
		{"bad order", []string{"query", "--order", "sideways"}, apperrors.ErrInvalidSortDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQuery_UnknownOutput(t *testing.T) {
	_, err := run(t, "query", "-o", "yaml")
	assert.Error(t, err)
}

func TestMeta(t *testing.T) {
	out, err := run(t, "meta")
	require.NoError(t, err)
	assert.Contains(t, out, "all, Single, In Relationship, Complicated, Married")
	assert.Contains(t, out, "createdAt, age, visits, progress")

	out, err = run(t, "meta", "-o", "json")
	require.NoError(t, err)
	var meta service.Meta
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	assert.Equal(t, []string{"asc", "desc"}, meta.SortDirections)
}
