package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafestim/ergmee/digraph"
)

const sampleConfig = `
# sample estimation config
arclist_filename = net.txt
ACA_S = 0.2
Ssteps = 50
structParams = Arc
structParams = Reciprocity
attrParams = Sender smoker
`

func TestParseBasicConfig(t *testing.T) {
	cfg, err := parse(strings.NewReader(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "net.txt", cfg.ArclistFilename)
	assert.Equal(t, 0.2, cfg.ACA_S)
	assert.Equal(t, uint(50), cfg.Ssteps)
	assert.Equal(t, []string{"Arc", "Reciprocity"}, cfg.StructParams)
	require.Len(t, cfg.AttrParams, 1)
	assert.Equal(t, "smoker", cfg.AttrParams[0].AttrName)
}

func TestParseUnknownKeyFails(t *testing.T) {
	_, err := parse(strings.NewReader("arclist_filename = net.txt\nbogusKey = 1\n"))
	assert.Error(t, err, "expected error for unknown key")
}

func TestValidateRejectsIFDWithExplicitArc(t *testing.T) {
	cfg := Default()
	cfg.ArclistFilename = "net.txt"
	cfg.UseIFDSampler = true
	cfg.StructParams = []string{"Arc"}
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsConditionalWithoutZones(t *testing.T) {
	cfg := Default()
	cfg.ArclistFilename = "net.txt"
	cfg.UseConditionalEstimation = true
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsReciprocityWithSnowball(t *testing.T) {
	cfg := Default()
	cfg.ArclistFilename = "net.txt"
	cfg.UseConditionalEstimation = true
	cfg.ZoneFilename = "zones.txt"
	cfg.ForbidReciprocity = true
	assert.Error(t, Validate(cfg))
}

func TestBuildRegistryResolvesNames(t *testing.T) {
	g := digraph.New(3, true, digraph.WithBinaryAttributes([]string{"smoker"}, [][]int{{1, 0, 1}}))
	cfg := Default()
	cfg.StructParams = []string{"Arc"}
	cfg.AttrParams = []AttrParam{{FuncName: "Sender", AttrName: "smoker"}}

	reg, err := BuildRegistry(cfg, g)
	require.NoError(t, err)
	assert.Len(t, reg.Specs, 2)
}

func TestBuildRegistryRejectsUnknownAttribute(t *testing.T) {
	g := digraph.New(3, true)
	cfg := Default()
	cfg.AttrParams = []AttrParam{{FuncName: "Sender", AttrName: "nonexistent"}}

	_, err := BuildRegistry(cfg, g)
	assert.Error(t, err, "expected error for unresolved attribute name")
}
