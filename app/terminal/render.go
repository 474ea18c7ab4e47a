// Package terminal renders the listing views for the command line.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mytheresa/catalog-browser/app/categories"
	"github.com/mytheresa/catalog-browser/app/listing"
)

type Renderer struct {
	w       io.Writer
	heading lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
	badge   lipgloss.Style
	warn    lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:       w,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		name:    lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		badge:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	}
}

// Categories renders the visible categories of a loaded listing.
func (r *Renderer) Categories(page *listing.CategoryListing) error {
	var b strings.Builder

	b.WriteString(r.heading.Render("Browse Our Categories"))
	b.WriteString("\n")
	if term := page.SearchTerm(); term != "" {
		fmt.Fprintf(&b, "%s\n", r.muted.Render(fmt.Sprintf("Search: %q", term)))
	}
	b.WriteString("\n")

	cards := listing.NewCategoryCards(page.VisibleCategories())
	if len(cards) == 0 {
		b.WriteString(categories.EmptyMessage)
		b.WriteString("\n")
	}
	for _, c := range cards {
		fmt.Fprintf(&b, "[%s] %s  %s\n", c.Icon, r.name.Render(c.Name), r.muted.Render(c.Href))
		if c.Description != "" {
			fmt.Fprintf(&b, "    %s\n", c.Description)
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Products renders a loaded product listing, or its not-found view.
func (r *Renderer) Products(page *listing.ProductListing) error {
	var b strings.Builder

	category := page.Category()
	if page.State() == listing.StateNotFound || category == nil {
		b.WriteString(r.heading.Render("Category Not Found"))
		b.WriteString("\n")
		b.WriteString("The category you're looking for doesn't exist.\n")
		b.WriteString(r.muted.Render("Back to Categories: /"))
		b.WriteString("\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	b.WriteString(r.heading.Render(category.Name))
	b.WriteString("\n")
	if d := category.DescriptionText(); d != "" {
		b.WriteString(d)
		b.WriteString("\n")
	}

	products := listing.NewProductCards(page.SortedProducts())
	fmt.Fprintf(&b, "\n%s  %s\n\n",
		r.name.Render(listing.ProductsHeading(len(products))),
		r.muted.Render(fmt.Sprintf("sorted by %s, %d columns", page.SortKey().Label(), page.GridDensity())),
	)

	if len(products) == 0 {
		b.WriteString("No Products Yet\n")
		b.WriteString("This category is currently being stocked. Check back soon!\n")
	}

	cols := int(page.GridDensity())
	if cols <= 0 {
		cols = int(listing.DefaultGridDensity)
	}
	for i, p := range products {
		line := fmt.Sprintf("%-32s $%8s", p.Name, p.Price)
		if p.Featured {
			line += " " + r.badge.Render("Featured")
		}
		if p.Unavailable {
			line += " " + r.warn.Render("Out of Stock")
		}
		b.WriteString(line)
		b.WriteString("\n")
		if p.SKU != "" {
			fmt.Fprintf(&b, "    %s\n", r.muted.Render("SKU: "+p.SKU))
		}
		if p.StockNotice != "" {
			fmt.Fprintf(&b, "    %s\n", r.warn.Render(p.StockNotice))
		}
		if (i+1)%cols == 0 && i+1 < len(products) {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}
