// Package embedded serves the word banks bundled into the binary.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"wordfall/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed banks/*.yaml
var banksFS embed.FS

// bankFile is the YAML layout of one bank
type bankFile struct {
	Key   string      `yaml:"key"`
	Name  string      `yaml:"name"`
	Words []entryFile `yaml:"words"`
}

type entryFile struct {
	En     string `yaml:"en"`
	Native string `yaml:"native"`
}

// BankRepo implements repository.WordBankRepository over YAML files
type BankRepo struct {
	fsys fs.FS
	dir  string
}

// NewBankRepo creates a repository over the bundled banks
func NewBankRepo() *BankRepo {
	return &BankRepo{fsys: banksFS, dir: "banks"}
}

// NewBankRepoFS creates a repository over the *.yaml files in dir of fsys
func NewBankRepoFS(fsys fs.FS, dir string) *BankRepo {
	return &BankRepo{fsys: fsys, dir: dir}
}

// ListBanks parses every bank file, ordered by key
func (r *BankRepo) ListBanks() ([]domain.WordBank, error) {
	files, err := fs.Glob(r.fsys, path.Join(r.dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	banks := make([]domain.WordBank, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(r.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		bank, err := ParseBank(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		banks = append(banks, bank)
	}

	sort.Slice(banks, func(i, j int) bool { return banks[i].Key < banks[j].Key })
	return banks, nil
}

// ParseBank decodes one YAML bank
func ParseBank(data []byte) (domain.WordBank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.WordBank{}, err
	}
	if f.Key == "" {
		return domain.WordBank{}, fmt.Errorf("bank key is required")
	}
	if f.Name == "" {
		f.Name = f.Key
	}

	bank := domain.WordBank{
		Key:   f.Key,
		Name:  f.Name,
		Words: make([]domain.WordPair, 0, len(f.Words)),
	}
	for _, e := range f.Words {
		bank.Words = append(bank.Words, domain.WordPair{Foreign: e.En, Native: e.Native})
	}
	return bank, nil
}
