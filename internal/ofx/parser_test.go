package ofx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing, SGML style with unclosed tags.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL ACME CORP
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	parser := NewParser()

	entries, err := parser.ParseFile(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	t.Run("debit becomes a positive expense entry", func(t *testing.T) {
		debit := entries[0]
		assert.True(t, debit.Debit)
		assert.Equal(t, 25.50, debit.Amount)
		assert.Equal(t, "STARBUCKS STORE #1234", debit.Description)
		assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), debit.Date)
	})

	t.Run("credit becomes an income entry", func(t *testing.T) {
		credit := entries[1]
		assert.False(t, credit.Debit)
		assert.Equal(t, 1500.00, credit.Amount)
		assert.Equal(t, "PAYROLL ACME CORP", credit.Description)
	})
}

func TestParseFileGarbage(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseFile(strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	t.Run("closes bare SGML tags", func(t *testing.T) {
		assert.Equal(t, "<STMTTRN>", preprocess("<STMTTRN"))
	})

	t.Run("leaves closed tags alone", func(t *testing.T) {
		assert.Equal(t, "<NAME>STARBUCKS", preprocess("<NAME>STARBUCKS"))
	})

	t.Run("trims leading blank lines", func(t *testing.T) {
		assert.Equal(t, "OFXHEADER:100", preprocess("\n\n  OFXHEADER:100"))
	})
}
