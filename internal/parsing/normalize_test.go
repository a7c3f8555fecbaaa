package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"golang", "Go"},
		{"Golang", "Go"},
		{"  GOLANG  ", "Go"},
		{"k8s", "Kubernetes"},
		{"React.js", "React"},
		{"reactjs", "React"},
		{"node.js", "Node.js"},
		{"postgres", "PostgreSQL"},
		{"ts", "TypeScript"},
		{"Python", "Python"}, // no alias, pass-through
		{"  Terraform ", "Terraform"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeSkillName(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeSkills_DeduplicatesPreservingOrder(t *testing.T) {
	result := NormalizeSkills([]string{"golang", "Python", "Go", "k8s", "python", ""})

	assert.Equal(t, []string{"Go", "Python", "Kubernetes"}, result)
}

func TestNormalizeSkills_Empty(t *testing.T) {
	assert.Empty(t, NormalizeSkills(nil))
	assert.Empty(t, NormalizeSkills([]string{"", "  "}))
}

func TestNormalizeRoleType(t *testing.T) {
	assert.Equal(t, "senior", normalizeRoleType(" Senior "))
	assert.Equal(t, "entry", normalizeRoleType("entry"))
	assert.Equal(t, "principal", normalizeRoleType("PRINCIPAL"))
	assert.Equal(t, "mid", normalizeRoleType(""))
	assert.Equal(t, "mid", normalizeRoleType("architect"))
}
