package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		bases   string
		want    string
		wantErr bool
		errType interface{}
	}{
		{
			name:  "valid DNA sequence",
			bases: "ATGCATGC",
			want:  "ATGCATGC",
		},
		{
			name:  "valid DNA with lowercase",
			bases: "atgcatgc",
			want:  "ATGCATGC",
		},
		{
			name:  "valid DNA with ambiguous base",
			bases: "ATGCNATGC",
			want:  "ATGCNATGC",
		},
		{
			name:  "RNA is normalized",
			bases: "AUGAAAUAG",
			want:  "ATGAAATAG",
		},
		{
			name:    "empty sequence",
			bases:   "",
			wantErr: true,
			errType: &EmptySequenceError{},
		},
		{
			name:    "invalid base X",
			bases:   "ATGCXATGC",
			wantErr: true,
			errType: &InvalidBaseError{},
		},
		{
			name:    "whitespace is rejected",
			bases:   "ATG CAT",
			wantErr: true,
			errType: &InvalidBaseError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.bases)

			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, tt.errType, err)
				assert.True(t, errors.Is(err, ErrInvalidSequence))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.Bases)
		})
	}
}

func TestInvalidBasePosition(t *testing.T) {
	err := ValidateNucleotide("ACGTZ")

	var baseErr *InvalidBaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, 4, baseErr.Position)
	assert.Equal(t, 'Z', baseErr.Found)
}

func TestWithID(t *testing.T) {
	seq, err := WithID("ACGT", "read1")
	require.NoError(t, err)
	assert.Equal(t, "read1", seq.ID)

	_, err = WithID("ACGT", "")
	require.Error(t, err)

	_, err = WithID("ACXT", "read2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read2")
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name  string
		bases string
		want  string
	}{
		{"simple", "ATGC", "GCAT"},
		{"palindrome", "GAATTC", "GAATTC"},
		{"ambiguous becomes X", "ATN", "XAT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseComplement(tt.bases))
		})
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	for _, s := range []string{"A", "ACGT", "TTTTGGGCCA", "GATTACAGATTACA"} {
		assert.Equal(t, s, ReverseComplement(ReverseComplement(s)), s)
	}
}

func TestPrefix(t *testing.T) {
	seq, err := New("ACGTA")
	require.NoError(t, err)

	assert.Equal(t, "ACGTA", seq.Prefix(5))
	assert.Equal(t, "ACG", seq.Prefix(3))
	assert.Equal(t, "", seq.Prefix(-1))
	assert.Equal(t, "ACGTA", seq.Prefix(10))
}
