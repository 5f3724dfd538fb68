package workbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/epf-engine/epf"
)

func TestSampleWorkbook_MatchesSchema(t *testing.T) {
	f, err := SampleWorkbook()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, SheetNames(), f.GetSheetList())

	rows, err := f.GetRows(SheetWages)
	require.NoError(t, err)
	require.Len(t, rows, 6, "header plus five members")
	assert.Equal(t, "A/C No.", rows[0][0])
	assert.Equal(t, "Mar", rows[0][13])
}

func TestSample_LoadsCleanly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSample(&buf))

	in, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 5, in.MemberCount())

	m := in.Members[0]
	assert.Equal(t, "EPF001", m.AccountNumber)
	assert.Equal(t, "John Doe", m.Name)
	assert.Equal(t, int64(50000), m.OpeningEE.Rupees())
	assert.Equal(t, int64(15000), m.OpeningER.Rupees())
	assert.Equal(t, int64(35000), m.OpeningPension.Rupees())
	assert.Equal(t, int64(5000), m.WithdrawalsEE[3].Rupees())
	assert.Equal(t, int64(1500), m.WithdrawalsER[3].Rupees())

	assert.Equal(t, "EPF005", in.Members[4].AccountNumber)
	assert.Equal(t, int64(8000), in.Members[3].WithdrawalsEE[1].Rupees())
}

func TestSample_FullRunAtStandardRate(t *testing.T) {
	// GIVEN the generated sample input
	var buf bytes.Buffer
	require.NoError(t, WriteSample(&buf))
	in, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// WHEN statements are computed at 8.5 percent
	engine := epf.NewStatementEngine(epf.NewRate(8.5))
	statements, err := engine.Run(in.Members)
	require.NoError(t, err)
	require.Len(t, statements, 5)

	// THEN the first member's slip matches the hand-computed year
	want := epf.Statement{
		AccountNumber:       "EPF001",
		Name:                "John Doe",
		OpeningEE:           50000,
		OpeningER:           15000,
		InterestEE:          411,
		InterestER:          124,
		ContributionEE:      21840,
		ContributionER:      6684,
		WithdrawalEE:        5000,
		WithdrawalER:        1500,
		ClosingEE:           67251,
		ClosingER:           20308,
		OpeningPension:      35000,
		ContributionPension: 15165,
		ClosingPension:      50165,
	}
	assert.Equal(t, want, statements[0])

	// Every slip reconciles its own closing balances
	for _, s := range statements {
		assert.Equal(t, s.OpeningEE+s.ContributionEE-s.WithdrawalEE+s.InterestEE, s.ClosingEE, s.AccountNumber)
		assert.Equal(t, s.OpeningPension+s.ContributionPension, s.ClosingPension, s.AccountNumber)
	}
}
