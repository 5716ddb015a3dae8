package etherscan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/gabapcia/walletlink/internal/pkg/logger"
	"github.com/gabapcia/walletlink/internal/pkg/types"
	"github.com/gabapcia/walletlink/internal/walletscan"

	"github.com/PuerkitoBio/goquery"
)

// ErrPaginationNotFound is returned by TotalPages when the page carries no
// "Page X of Y" indicator.
var ErrPaginationNotFound = errors.New("pagination indicator not found")

// Column positions of the token-tracker listing.
const (
	minCells   = 9
	hashCell   = 1
	methodCell = 6
	fromCell   = 7
)

// methodExecute rows are contract executions, not transfers, and are skipped.
const methodExecute = "execute"

// missingValue is used for optional fields the row does not carry.
const missingValue = "N/A"

var pagePattern = regexp.MustCompile(`Page\s+\d+\s+of\s+(\d+)`)

// directions are the badge labels recognised as a transaction direction.
var directions = types.NewSet(
	walletscan.DirectionIncoming,
	walletscan.DirectionOutgoing,
	walletscan.DirectionSelf,
)

// parser extracts listing data from Etherscan HTML.
type parser struct {
	baseURL *url.URL
}

// Compile-time check to ensure *parser implements walletscan.PageParser.
var _ walletscan.PageParser = (*parser)(nil)

// NewParser creates a parser. baseURL is used to turn the relative
// transaction links of the listing into permalinks.
func NewParser(baseURL string) (*parser, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &parser{baseURL: u}, nil
}

func parseDocument(raw []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return doc, nil
}

// TotalPages implements walletscan.PageParser.
//
// The indicator is looked up in the pagination span first and then anywhere
// in the page text.
func (p *parser) TotalPages(raw []byte) (int, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return 0, err
	}

	candidates := []string{
		doc.Find("span.page-link.text-nowrap").Text(),
		doc.Text(),
	}

	for _, text := range candidates {
		match := pagePattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		total, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrPaginationNotFound, match[0])
		}

		return total, nil
	}

	return 0, ErrPaginationNotFound
}

// counterpartyFromHref extracts the address a listing link points to. The
// address is taken from the "a" query parameter or, failing that, from an
// /address/<x> path. Fragments and other parameters are ignored.
func counterpartyFromHref(href string) string {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}

	if a := strings.TrimSpace(u.Query().Get("a")); a != "" {
		return a
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 2; i >= 0; i-- {
		if segments[i] == "address" && segments[i+1] != "" {
			return segments[i+1]
		}
	}

	return ""
}

// permalink resolves href against the base URL.
func (p *parser) permalink(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}

	return p.baseURL.ResolveReference(ref).String()
}

// direction returns the first direction badge of row, if any.
func direction(row *goquery.Selection) string {
	var found string
	row.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label := strings.ToUpper(strings.TrimSpace(s.Text()))
		if directions.Has(label) {
			found = label
			return false
		}
		return true
	})

	return found
}

// parseRow turns one table row into a transaction. ok is false for rows that
// do not carry a transaction.
func (p *parser) parseRow(row *goquery.Selection, wallet string) (tx walletscan.Transaction, reason string, ok bool) {
	cells := row.Find("td")
	if cells.Length() < minCells {
		return tx, "too few cells", false
	}

	hashLink := cells.Eq(hashCell).Find("a").First()
	hash := strings.TrimSpace(hashLink.Text())
	href, _ := hashLink.Attr("href")
	if hash == "" || href == "" {
		return tx, "missing transaction link", false
	}

	fromHref, _ := cells.Eq(fromCell).Find("a").First().Attr("href")
	from := counterpartyFromHref(fromHref)
	if from == "" {
		return tx, "missing counterparty", false
	}

	method := strings.TrimSpace(cells.Eq(methodCell).Find("span").First().Text())
	if method == "" {
		method = missingValue
	}

	if strings.EqualFold(method, methodExecute) {
		return tx, "execute method", false
	}

	return walletscan.Transaction{
		WalletAddress: wallet,
		Hash:          hash,
		Link:          p.permalink(href),
		From:          from,
		Method:        method,
		Direction:     direction(row),
	}, "", true
}

// Transactions implements walletscan.PageParser.
func (p *parser) Transactions(ctx context.Context, raw []byte, wallet string, limit int) ([]walletscan.Transaction, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, walletscan.ErrNoTransactionTable
	}

	var (
		rows    = table.Find("tr")
		emitted = types.NewSet[string]()
		txs     = make([]walletscan.Transaction, 0)
	)

	for i := 1; i < rows.Length() && len(txs) < limit; i++ {
		tx, reason, ok := p.parseRow(rows.Eq(i), wallet)
		if !ok {
			logger.Debug(ctx, "row skipped", "row", i, "reason", reason)
			continue
		}

		if emitted.Has(tx.From) {
			continue
		}

		emitted.Add(tx.From)
		txs = append(txs, tx)
	}

	return txs, nil
}
