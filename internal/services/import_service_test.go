package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
)

const sampleCSV = "Business ID,Business Name,Symptom Code,Symptom Name,Symptom Diagnostic\n" +
	"1,Acme,SYMPT0001,Fever,true\n" +
	"1,Acme,SYMPT0002,Cough,false\n"

func TestStageCSVSample(t *testing.T) {
	batch, err := stageCSV([]byte(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, batch.rowCount)
	require.Len(t, batch.businesses, 1)
	assert.Equal(t, models.Business{ID: 1, Name: "Acme"}, batch.businesses[0])
	require.Len(t, batch.symptoms, 2)
	require.Len(t, batch.links, 2)
	assert.True(t, batch.links[0].Diagnostic)
	assert.False(t, batch.links[1].Diagnostic)
}

func TestStageCSVEmptyInput(t *testing.T) {
	for name, input := range map[string]string{
		"no bytes":    "",
		"header only": "Business ID,Business Name,Symptom Code,Symptom Name,Symptom Diagnostic\n",
	} {
		t.Run(name, func(t *testing.T) {
			batch, err := stageCSV([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, 0, batch.rowCount)
			assert.Empty(t, batch.businesses)
			assert.Empty(t, batch.symptoms)
			assert.Empty(t, batch.links)
		})
	}
}

func TestStageCSVMissingColumn(t *testing.T) {
	csv := "Business ID,Business Name,Symptom Code,Symptom Name\n" +
		"1,Acme,SYMPT0001,Fever\n"

	_, err := stageCSV([]byte(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Symptom Diagnostic")
}

func TestStageCSVNonNumericBusinessID(t *testing.T) {
	csv := "Business ID,Business Name,Symptom Code,Symptom Name,Symptom Diagnostic\n" +
		"abc,Acme,SYMPT0001,Fever,true\n"

	_, err := stageCSV([]byte(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStageCSVLastOccurrenceWins(t *testing.T) {
	csv := "Business ID,Business Name,Symptom Code,Symptom Name,Symptom Diagnostic\n" +
		"1,Acme,SYMPT0001,Fever,true\n" +
		"1,Acme Inc,SYMPT0001,High Fever,false\n"

	batch, err := stageCSV([]byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, batch.rowCount)
	require.Len(t, batch.businesses, 1)
	assert.Equal(t, "Acme Inc", batch.businesses[0].Name)
	require.Len(t, batch.symptoms, 1)
	assert.Equal(t, "High Fever", batch.symptoms[0].Name)
	require.Len(t, batch.links, 1)
	assert.False(t, batch.links[0].Diagnostic)
}

func TestStageCSVTrimsWhitespace(t *testing.T) {
	csv := "Business ID,Business Name,Symptom Code,Symptom Name,Symptom Diagnostic\n" +
		" 7 ,  Acme  , SYMPT0009 ,  Headache , TRUE \n"

	batch, err := stageCSV([]byte(csv))
	require.NoError(t, err)

	require.Len(t, batch.links, 1)
	assert.Equal(t, 7, batch.businesses[0].ID)
	assert.Equal(t, "Acme", batch.businesses[0].Name)
	assert.Equal(t, "SYMPT0009", batch.symptoms[0].Code)
	assert.Equal(t, "Headache", batch.symptoms[0].Name)
	assert.True(t, batch.links[0].Diagnostic)
}

func TestStageCSVReorderedHeader(t *testing.T) {
	csv := "Symptom Code,Business ID,Symptom Diagnostic,Business Name,Symptom Name\n" +
		"SYMPT0001,1,yes,Acme,Fever\n"

	batch, err := stageCSV([]byte(csv))
	require.NoError(t, err)

	require.Len(t, batch.links, 1)
	assert.Equal(t, 1, batch.links[0].BusinessID)
	assert.Equal(t, "SYMPT0001", batch.links[0].SymptomCode)
	assert.True(t, batch.links[0].Diagnostic)
}

func TestStageCSVDropsInvalidUTF8(t *testing.T) {
	csv := []byte("Business ID,Business Name,Symptom Code,Symptom Name,Symptom Diagnostic\n" +
		"1,Ac\xffme,SYMPT0001,Fever,true\n")

	batch, err := stageCSV(csv)
	require.NoError(t, err)
	assert.Equal(t, "Acme", batch.businesses[0].Name)
}

func TestParseDiagnostic(t *testing.T) {
	truthy := []string{"true", "TRUE", "True", "1", "yes", "YES", " yes "}
	for _, v := range truthy {
		assert.True(t, parseDiagnostic(v), "expected %q to be truthy", v)
	}

	// Unrecognized values fall back to false rather than erroring.
	falsy := []string{"false", "0", "no", "", "maybe", "2", "garbage"}
	for _, v := range falsy {
		assert.False(t, parseDiagnostic(v), "expected %q to be falsy", v)
	}
}
