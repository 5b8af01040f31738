package analysis

//go:generate mockgen -source=analysis.go -destination=mocks/mocks.go -package=mocks Analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubAnalyzer(t *testing.T) {
	t.Run("always returns the advisory", func(t *testing.T) {
		for _, kind := range []DocumentKind{DocumentPassport, DocumentNationalID} {
			res, err := NewStub().Analyze(context.Background(), Document{
				Kind:        kind,
				Filename:    "scan.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.7"),
			})
			assert.Nil(t, res)
			require.ErrorIs(t, err, ErrAnalysisUnavailable)

			var failure *Failure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, StubAdvisory, failure.Advisory)
		}
	})

	t.Run("respects a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewStub().Analyze(ctx, Document{Kind: DocumentPassport})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseDocumentKind(t *testing.T) {
	k, err := ParseDocumentKind("nationalId")
	require.NoError(t, err)
	assert.Equal(t, DocumentNationalID, k)

	_, err = ParseDocumentKind("driving-licence")
	assert.Error(t, err)
}
