package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/usage"
)

func TestCheck_BoundaryTable(t *testing.T) {
	const (
		min       = 1
		minActive = 2
		cur       = 5
	)

	tests := []struct {
		name      string
		requested int
		wantCode  int
		wantWarn  bool
	}{
		{name: "below minimum is too old", requested: 0, wantCode: usage.ExitFormatTooOld},
		{name: "deprecated floor warns but accepts", requested: 1, wantWarn: true},
		{name: "mid-window accepts silently", requested: 3},
		{name: "current accepts silently", requested: 5},
		{name: "above current is too new", requested: 6, wantCode: usage.ExitFormatTooNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			err := Check(&warnings, tt.requested, cur, min, minActive)

			if tt.wantCode != 0 {
				require.Error(t, err)
				var ue *usage.Error
				require.True(t, errors.As(err, &ue))
				require.Equal(t, tt.wantCode, ue.ExitCode())
				return
			}

			require.NoError(t, err)
			if tt.wantWarn {
				require.Contains(t, warnings.String(), "deprecated")
			} else {
				require.Empty(t, warnings.String())
			}
		})
	}
}

func TestCheck_DiagnosticsNameBothVersions(t *testing.T) {
	err := Check(&bytes.Buffer{}, 9, 5, 1, 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "9")
	require.Contains(t, err.Error(), "5")

	err = Check(&bytes.Buffer{}, 0, 5, 1, 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "0")
	require.Contains(t, err.Error(), "1")
}

func TestCheckCurrent_UsesBuildConstants(t *testing.T) {
	require.NoError(t, CheckCurrent(&bytes.Buffer{}, VersionCur))

	err := CheckCurrent(&bytes.Buffer{}, VersionCur+1)
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitFormatTooNew, ue.ExitCode())
}
