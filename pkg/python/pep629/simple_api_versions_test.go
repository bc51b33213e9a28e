package pep629_test

import (
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"

	"github.com/opencollector/wheelindex/pkg/python/pep629"
)

func TestCheck(t *testing.T) {
	t.Parallel()
	type testcase struct {
		InputVersion string
		ExpectedErr  bool
	}
	testcases := map[string]testcase{
		"same":         {InputVersion: "1.0"},
		"newer-minor":  {InputVersion: "1.9"},
		"older":        {InputVersion: "0.1"},
		"newer-major":  {InputVersion: "2.0", ExpectedErr: true},
		"malformed":    {InputVersion: "one", ExpectedErr: true},
		"non-numeric":  {InputVersion: "1.x", ExpectedErr: true},
		"empty-string": {InputVersion: "", ExpectedErr: true},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			ctx := dlog.NewTestContext(t, false)
			err := pep629.Check(ctx, tcData.InputVersion)
			if tcData.ExpectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
