package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"nexus-bank/internal/domain"
)

const userColumns = 5

// CSVUserRepository implements the UserRepository interface for a CSV seed
// file with the header name,email,password,account_number,balance.
type CSVUserRepository struct {
	path string
}

// NewCSVUserRepository creates a new repository instance.
func NewCSVUserRepository(path string) *CSVUserRepository {
	return &CSVUserRepository{path: path}
}

// GetUsers reads and parses the seed users CSV file.
func (r *CSVUserRepository) GetUsers(ctx context.Context) ([]*domain.User, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed user file %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", r.path, err)
	}
	if len(header) < userColumns {
		return nil, fmt.Errorf("header of %s has %d columns, want %d", r.path, len(header), userColumns)
	}

	var users []*domain.User
	seen := make(map[string]bool)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", r.path, err)
		}

		balance, err := decimal.NewFromString(strings.TrimSpace(record[4]))
		if err != nil {
			return nil, fmt.Errorf("could not parse balance '%s': %w", record[4], err)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("negative opening balance '%s' for %s", record[4], record[1])
		}

		email := strings.TrimSpace(record[1])
		if seen[email] {
			return nil, fmt.Errorf("duplicate seed user email %s in %s", email, r.path)
		}
		seen[email] = true

		users = append(users, domain.NewUser(
			strings.TrimSpace(record[0]),
			email,
			record[2],
			strings.TrimSpace(record[3]),
			balance,
		))
	}
	return users, nil
}
