package swagger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Summary   string                     `json:"summary"`
	Responses map[string]json.RawMessage `json:"responses"`
}

var (
	routeLine   = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)
	summaryLine = regexp.MustCompile(`@Summary\s+(.+)`)
	failureLine = regexp.MustCompile(`@(?:Success|Failure)\s+(\d{3})`)
)

// TestDocMatchesAnnotations keeps the registered document in step with the
// handler annotations it is generated from.
func TestDocMatchesAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	handlers, err := filepath.Glob("../../feature/*/handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, handlers)

	annotated := 0
	for _, file := range handlers {
		src, err := os.ReadFile(file)
		require.NoError(t, err)

		// Each handler comment block ends with its @Router line.
		var summary string
		var codes []string
		for _, line := range strings.Split(string(src), "\n") {
			if m := summaryLine.FindStringSubmatch(line); m != nil {
				summary = strings.TrimSpace(m[1])
				codes = nil
			}
			if m := failureLine.FindStringSubmatch(line); m != nil {
				codes = append(codes, m[1])
			}
			m := routeLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			annotated++

			op, ok := doc.Paths[m[1]][m[2]]
			if !assert.True(t, ok, "%s %s missing from document", m[2], m[1]) {
				continue
			}
			assert.Equal(t, summary, op.Summary, m[1])
			for _, code := range codes {
				assert.Contains(t, op.Responses, code, "%s response %s", m[1], code)
			}
		}
	}

	total := 0
	for _, ops := range doc.Paths {
		total += len(ops)
	}
	assert.Equal(t, annotated, total, "document lists operations no handler declares")
}
