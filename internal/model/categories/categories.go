// Package categories loads a user's category tree, resolves ids for display and
// bootstraps the default set for new users.
package categories

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/translate"
)

type config interface {
	Locale() string
}

// Label is what the presentation needs to render a category reference.
type Label struct {
	Name       string
	Color      string
	ChartColor string
}

var fallbackLabel = Label{
	Name:       expense.FallbackName,
	Color:      expense.FallbackColor,
	ChartColor: expense.FallbackChartColor,
}

type Node struct {
	expense.Category
	Children []*Node
}

// Catalog is an immutable snapshot of a user's categories.
type Catalog struct {
	byID  map[string]expense.Category
	roots []*Node
}

func NewCatalog(cats []expense.Category) *Catalog {
	c := &Catalog{byID: make(map[string]expense.Category, len(cats))}
	nodes := make(map[string]*Node, len(cats))
	ordered := append([]expense.Category(nil), cats...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Level != ordered[j].Level {
			return ordered[i].Level < ordered[j].Level
		}
		return ordered[i].SortOrder < ordered[j].SortOrder
	})
	for _, cat := range ordered {
		c.byID[cat.ID] = cat
		nodes[cat.ID] = &Node{Category: cat}
	}
	for _, cat := range ordered {
		node := nodes[cat.ID]
		parent, ok := nodes[cat.ParentID]
		if cat.ParentID == "" || !ok || parent == node {
			c.roots = append(c.roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return c
}

// Lookup never fails: unknown ids resolve to the fallback label.
func (c *Catalog) Lookup(id string) Label {
	if c == nil {
		return fallbackLabel
	}
	cat, ok := c.byID[id]
	if !ok {
		return fallbackLabel
	}
	label := Label{Name: cat.DisplayName, Color: cat.Color, ChartColor: cat.ChartColor}
	if label.Name == "" {
		label.Name = cat.Name
	}
	if label.Name == "" {
		label.Name = fallbackLabel.Name
	}
	if label.Color == "" {
		label.Color = fallbackLabel.Color
	}
	if label.ChartColor == "" {
		label.ChartColor = fallbackLabel.ChartColor
	}
	return label
}

func (c *Catalog) Roots() []*Node {
	if c == nil {
		return nil
	}
	return c.roots
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// ByName finds a category by its name or display name, case-sensitive.
func (c *Catalog) ByName(name string) (expense.Category, bool) {
	if c == nil {
		return expense.Category{}, false
	}
	for _, root := range c.roots {
		if found, ok := findByName(root, name); ok {
			return found, true
		}
	}
	return expense.Category{}, false
}

func findByName(n *Node, name string) (expense.Category, bool) {
	if n.Name == name || n.DisplayName == name {
		return n.Category, true
	}
	for _, child := range n.Children {
		if found, ok := findByName(child, name); ok {
			return found, true
		}
	}
	return expense.Category{}, false
}

type Service struct {
	gateway gateway.Gateway
	locale  string
}

func NewService(gw gateway.Gateway, config config) *Service {
	return &Service{gateway: gw, locale: config.Locale()}
}

// Tree loads the user's categories through the category tree aggregate.
func (s *Service) Tree(ctx context.Context, userID string) (*Catalog, error) {
	rows, err := s.gateway.CallAggregate(ctx, gateway.AggCategoryTree, translate.Row{"user_id": userID})
	if err != nil {
		return nil, errors.Wrap(err, "load category tree")
	}
	return NewCatalog(expense.CategoriesFromRows(translate.RowsToCamel(rows))), nil
}

// EnsureForUser creates the default category set when the user has none.
// It reports whether categories were created.
func (s *Service) EnsureForUser(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	existing, err := s.gateway.SelectAll(ctx, gateway.TableCategories, userID, "sort_order asc")
	if err != nil {
		return false, errors.Wrap(err, "check existing categories")
	}
	if len(existing) > 0 {
		return false, nil
	}

	params := translate.RowToSnake(translate.Row{
		"userId":      userID,
		"categorySet": expense.DefaultCategorySet,
		"locale":      s.locale,
	})
	created, err := s.gateway.CallAggregate(ctx, gateway.AggCreateUserCategories, params)
	if err != nil {
		return false, errors.Wrap(err, "create default categories")
	}
	logger.Info("created default categories",
		zap.String("user", userID),
		zap.Int("count", len(created)),
	)
	return true, nil
}
