package catalog

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type RiskScore string

const (
	RiskLow    RiskScore = "low"
	RiskMedium RiskScore = "medium"
	RiskHigh   RiskScore = "high"
)

type Token struct {
	Symbol           string    `yaml:"symbol" json:"symbol"`
	Name             string    `yaml:"name" json:"name"`
	Price            string    `yaml:"price" json:"price"`
	Change24h        float64   `yaml:"change24h" json:"change24h"`
	MarketCap        string    `yaml:"marketCap" json:"marketCap"`
	Volume           string    `yaml:"volume" json:"volume"`
	Holders          string    `yaml:"holders" json:"holders"`
	RiskScore        RiskScore `yaml:"riskScore" json:"riskScore"`
	Description      string    `yaml:"description" json:"description"`
	Chain            string    `yaml:"chain" json:"chain"`
	ContractAddress  string    `yaml:"contractAddress,omitempty" json:"contractAddress,omitempty"`
	PoolAddress      string    `yaml:"poolAddress,omitempty" json:"poolAddress,omitempty"`
	GeckoTerminalURL string    `yaml:"geckoTerminalUrl,omitempty" json:"geckoTerminalUrl,omitempty"`
}

type RiskLevel string

const (
	LevelSafe    RiskLevel = "safe"
	LevelWarning RiskLevel = "warning"
	LevelDanger  RiskLevel = "danger"
)

type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

type Check struct {
	Name        string      `yaml:"name" json:"name"`
	Status      CheckStatus `yaml:"status" json:"status"`
	Description string      `yaml:"description" json:"description"`
}

type SecurityReport struct {
	Address      string    `yaml:"address" json:"address"`
	TokenName    string    `yaml:"tokenName" json:"tokenName"`
	Symbol       string    `yaml:"symbol" json:"symbol"`
	RiskLevel    RiskLevel `yaml:"riskLevel" json:"riskLevel"`
	OverallScore int       `yaml:"overallScore" json:"overallScore"`
	Checks       []Check   `yaml:"checks" json:"checks"`
	Warnings     []string  `yaml:"warnings" json:"warnings"`
}

var ErrEmptyAddress = errors.New("contract address is required")

// Catalog — фиксированные мок-данные, только чтение
type Catalog struct {
	tokens     []Token
	reportKeys []string
	reports    map[string]SecurityReport
	learn      Learning
}

func Load() (*Catalog, error) {
	var tokens []Token
	if err := decode("data/tokens.yaml", &tokens); err != nil {
		return nil, err
	}

	var reports map[string]SecurityReport
	if err := decode("data/scam_reports.yaml", &reports); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(reports))
	normalized := make(map[string]SecurityReport, len(reports))
	for k, r := range reports {
		k = strings.ToLower(k)
		keys = append(keys, k)
		normalized[k] = r
	}
	sort.Strings(keys)

	var learn Learning
	if err := decode("data/guides.yaml", &learn); err != nil {
		return nil, err
	}

	return &Catalog{tokens: tokens, reportKeys: keys, reports: normalized, learn: learn}, nil
}

func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(name string, out any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) Tokens() []Token {
	return append([]Token(nil), c.tokens...)
}

// SearchTokens matches the query against symbol and name, case-insensitive.
// A blank query returns nothing. Surrounding spaces are kept and take part
// in the match, so "pepe " finds nothing.
func (c *Catalog) SearchTokens(query string) []Token {
	if strings.TrimSpace(query) == "" {
		return []Token{}
	}
	q := strings.ToLower(query)
	return lo.Filter(c.tokens, func(t Token, _ int) bool {
		return strings.Contains(strings.ToLower(t.Symbol), q) ||
			strings.Contains(strings.ToLower(t.Name), q)
	})
}

// Scan returns the known report whose key prefixes the address,
// or a generic "unknown token" report.
func (c *Catalog) Scan(address string) (SecurityReport, error) {
	addr := strings.TrimSpace(address)
	if addr == "" {
		return SecurityReport{}, ErrEmptyAddress
	}

	lower := strings.ToLower(addr)
	for _, k := range c.reportKeys {
		if strings.HasPrefix(lower, k) {
			r := c.reports[k]
			r.Checks = append([]Check(nil), r.Checks...)
			r.Warnings = append([]string{}, r.Warnings...)
			return r, nil
		}
	}

	return unknownReport(addr), nil
}

func unknownReport(addr string) SecurityReport {
	return SecurityReport{
		Address:      addr,
		TokenName:    "Unknown Token",
		Symbol:       "UNK",
		RiskLevel:    LevelWarning,
		OverallScore: 50,
		Checks: []Check{
			{Name: "Basic Security", Status: CheckWarning, Description: "Limited information available"},
		},
		Warnings: []string{"Token not found in our database - proceed with extreme caution"},
	}
}
