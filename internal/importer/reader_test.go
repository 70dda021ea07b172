package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSVComma(t *testing.T) {
	input := "CURSO,DISCIPLINA,CH\nMatemática,Cálculo I,60\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Matemática", rows[0]["CURSO"])
	assert.Equal(t, "60", rows[0]["CH"])
}

func TestReadCSVSniffsSemicolon(t *testing.T) {
	input := "CURSO;DISCIPLINA;CH\nFísica;Mecânica;45\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Física", rows[0]["CURSO"])
	assert.Equal(t, "Mecânica", rows[0]["DISCIPLINA"])
}

func TestReadCSVSniffsTab(t *testing.T) {
	input := "CURSO\tDISCIPLINA\nQuímica\tOrgânica\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Orgânica", rows[0]["DISCIPLINA"])
}

func TestReadCSVStripsBOM(t *testing.T) {
	input := "\uFEFFCURSO,DISCIPLINA\nA,B\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0]["CURSO"])
}

func TestReadCSVSkipsBlankRows(t *testing.T) {
	input := "CURSO,DISCIPLINA\nA,B\n,\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReadCSVEmptyFile(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("   \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"CURSO", "DISCIPLINA", "DOCENTES"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]string{"Matemática", "Cálculo I", "Ana Silva"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cálculo I", rows[0]["DISCIPLINA"])
	assert.Equal(t, "Ana Silva", rows[0]["DOCENTES"])
}

func TestReadFileDispatch(t *testing.T) {
	_, err := ReadFile("catalogo.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	rows, err := ReadFile("catalogo.csv", strings.NewReader("CURSO,DISCIPLINA\nA,B\n"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReadFileDecodeFailure(t *testing.T) {
	// Not a zip archive, so the xlsx decoder must fail cleanly.
	_, err := ReadFile("catalogo.xlsx", strings.NewReader("not an xlsx"))
	assert.ErrorIs(t, err, ErrDecode)
}
