package leaderboardservice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	ranked := Rank([]Entry{{Player: "111", Points: 3}, {Player: "222", Label: "alex", Points: 8}}, 0)

	data, err := ExportXLSX("Total Scores", ranked)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Total Scores")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Rank", "Player", "Points"},
		{"1", "alex", "8"},
		{"2", "111", "3"},
	}, rows)
}
