package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, lines ...string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "prog.asm")
	err := os.WriteFile(name, []byte(strings.Join(lines, "\n")), 0o644)
	require.NoError(t, err)

	return name
}

func TestMcName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("dir/prog.mc", mcName("dir/prog.asm"))
	assert.Equal("prog.mc", mcName("prog"))
}

func TestDefine(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]int64{}
	assert.NoError(define(defines, "SIZE=0x10"))
	assert.Equal(int64(16), defines["SIZE"])

	assert.Error(define(defines, "SIZE"))
	assert.Error(define(defines, "=5"))
	assert.Error(define(defines, "SIZE=big"))
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t,
		"START: ADD R1 R2 $(STEP)",
		"       BEQ START",
		"       HLT",
	)
	opts := options{
		Input:   input,
		Text:    mcName(input),
		Binary:  filepath.Join(filepath.Dir(input), "prog.bin"),
		Defines: map[string]int64{"STEP": 3},
	}

	diag := &bytes.Buffer{}
	count, err := assemble(opts, diag)
	require.NoError(t, err)
	assert.Equal(0, count)
	assert.Empty(diag.String())

	mc, err := os.ReadFile(opts.Text)
	require.NoError(t, err)
	assert.Equal(strings.Join([]string{
		"00000100010010000000000000000011",
		"10000111111111111111111111111110",
		"11111000000000000000000000000000",
		"",
	}, "\n"), string(mc))

	bin, err := os.ReadFile(opts.Binary)
	require.NoError(t, err)
	assert.Len(bin, 12)

	out := &bytes.Buffer{}
	err = disassemble(opts.Binary, out)
	require.NoError(t, err)
	assert.Equal(strings.Join([]string{
		"0000: 00000100010010000000000000000011 ADD R1 R2 3",
		"0001: 10000111111111111111111111111110 BEQ -2",
		"0002: 11111000000000000000000000000000 HLT",
		"",
	}, "\n"), out.String())
}

func TestAssembleDiagnostics(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t,
		"BEQ NOWHERE",
		"HLT",
	)
	opts := options{
		Input:  input,
		Text:   mcName(input),
		Binary: filepath.Join(filepath.Dir(input), "prog.bin"),
	}

	diag := &bytes.Buffer{}
	count, err := assemble(opts, diag)
	require.NoError(t, err)
	assert.Equal(1, count)
	assert.Contains(diag.String(), "NOWHERE")

	mc, err := os.ReadFile(opts.Text)
	require.NoError(t, err)
	assert.Equal("11111000000000000000000000000000\n", string(mc))

	_, err = os.Stat(opts.Binary)
	assert.True(os.IsNotExist(err))
}
