// Package ofx converts bank statement files into pocketbook entries.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
)

// Entry is one statement transaction mapped onto pocketbook's model:
// debits become expense entries, credits become income entries.
type Entry struct {
	Date        time.Time
	Description string
	Amount      float64 // always positive
	Debit       bool    // true for money out (an expense)
}

// Parser reads OFX/QFX statements.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses an OFX/QFX statement and returns its entries in
// statement order, bank accounts first, then credit cards.
func (p *Parser) ParseFile(reader io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []Entry
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			entries = append(entries, statementEntries(stmt.BankTranList)...)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			entries = append(entries, statementEntries(stmt.BankTranList)...)
		}
	}

	slog.Info("parsed OFX file",
		"entries", len(entries),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return entries, nil
}

// preprocess fixes common formatting issues in OFX files before
// handing them to ofxgo: leading whitespace ahead of the header and
// SGML-style opening tags missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	var fixed []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		if isUnclosedTag(trimmed) {
			trimmed += ">"
		}
		fixed = append(fixed, trimmed)
	}
	return strings.Join(fixed, "\n")
}

func isUnclosedTag(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 2 || t[0] != '<' || strings.ContainsAny(t, ">") {
		return false
	}
	for _, r := range t[1:] {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '.' && r != '_' && r != '/' {
			return false
		}
	}
	return true
}

func statementEntries(list *ofxgo.TransactionList) []Entry {
	if list == nil {
		return nil
	}

	entries := make([]Entry, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		entries = append(entries, convertTransaction(tx))
	}
	return entries
}

// convertTransaction maps one OFX transaction. OFX amounts are signed,
// negative for money out; pocketbook records positive amounts and
// keeps the direction separately.
func convertTransaction(tx ofxgo.Transaction) Entry {
	amount, _ := tx.TrnAmt.Float64()

	posted := tx.DtPosted.Time
	entry := Entry{
		Date:        time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC),
		Description: description(tx),
		Amount:      amount,
		Debit:       amount < 0,
	}
	if entry.Amount < 0 {
		entry.Amount = -entry.Amount
	}
	return entry
}

// description prefers the payee name, then NAME, then MEMO.
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(string(tx.Memo))
}
