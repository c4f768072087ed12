package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitjump/internal/domain"
	"gitjump/internal/eventbus"
	"gitjump/internal/logging"
)

// Scanner finds repositories below a root directory
type Scanner struct {
	Marker   string   // entry whose presence makes a directory a repository, e.g. ".git"
	MaxDepth int      // directories deeper than this below the root are not visited
	SkipDirs []string // directory names never descended into
	Bus      eventbus.EventBus
}

// NewScanner creates a scanner with the given marker and depth limit
func NewScanner(marker string, maxDepth int, skipDirs []string, bus eventbus.EventBus) *Scanner {
	return &Scanner{
		Marker:   marker,
		MaxDepth: maxDepth,
		SkipDirs: skipDirs,
		Bus:      bus,
	}
}

// Scan walks root and returns every repository in walk order. Unreadable
// directories are skipped. Only a missing root or cancellation is an error.
func (s *Scanner) Scan(ctx context.Context, root string) ([]domain.Item, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to scan %s: not a directory", root)
	}

	s.publish(eventbus.ScanStartedEvent{Paths: []string{absRoot}})

	skip := make(map[string]bool, len(s.SkipDirs))
	for _, name := range s.SkipDirs {
		skip[name] = true
	}

	var items []domain.Item
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			logging.Debug("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		if path != absRoot {
			name := d.Name()
			if strings.HasPrefix(name, ".") || skip[name] {
				return filepath.SkipDir
			}
			if depth(absRoot, path) > s.MaxDepth {
				return filepath.SkipDir
			}
		}

		if s.isRepository(path) {
			item := domain.Item{Name: filepath.Base(path), Path: path}
			items = append(items, item)
			s.publish(eventbus.RepoDiscoveredEvent{Repo: item})
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			s.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to scan %s", absRoot), Err: err})
		}
		return nil, fmt.Errorf("scan of %s interrupted: %w", absRoot, err)
	}

	s.publish(eventbus.ScanCompletedEvent{ReposFound: len(items)})
	return Disambiguate(items), nil
}

func (s *Scanner) isRepository(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, s.Marker))
	return err == nil
}

func (s *Scanner) publish(e eventbus.DomainEvent) {
	if s.Bus != nil {
		s.Bus.Publish(e)
	}
}

// depth returns how many directory levels path lies below root
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// Disambiguate appends the parent directory name to display names that occur
// more than once, so "api" under work/ and home/ become "api (work)" and
// "api (home)". Order and paths are unchanged.
func Disambiguate(items []domain.Item) []domain.Item {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[item.Name]++
	}

	out := make([]domain.Item, len(items))
	for i, item := range items {
		if counts[item.Name] > 1 {
			parent := filepath.Base(filepath.Dir(item.Path))
			item.Name = fmt.Sprintf("%s (%s)", item.Name, parent)
		}
		out[i] = item
	}
	return out
}
