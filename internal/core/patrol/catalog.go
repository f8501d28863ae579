// Package patrol contains the pure business logic for patrol rounds.
// The location catalog and shift labels are closed sets; all functions
// here are side-effect free.
package patrol

import "fmt"

// catalog is the fixed, ordered list of patrol locations. Iteration and
// auto-advance order follow this slice.
var catalog = []string{
	"9 Boulevard Montclair",
	"190 Promenade du Portage",
	"200 Promenade du Portage – Suite 0291",
	"200 Promenade du Portage – Suite 1000",
	"200 Promenade du Portage – Suite 5010",
	"105 Rue Hôtel-de-Ville – 2nd Floor",
	"105 Rue Hôtel-de-Ville – 1st Floor",
	"50 Rue Victoria",
}

// Catalog returns the ordered list of patrol locations.
// Callers must not mutate the returned slice.
func Catalog() []string {
	return catalog
}

// CatalogSize returns the number of locations in the catalog.
func CatalogSize() int {
	return len(catalog)
}

// IndexOf returns the catalog index of the given location, or an error
// if the location is not in the catalog.
func IndexOf(location string) (int, error) {
	for i, loc := range catalog {
		if loc == location {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown location: %s", location)
}

// InCatalog reports whether the location is part of the catalog.
func InCatalog(location string) bool {
	_, err := IndexOf(location)
	return err == nil
}

// Next returns the location following the given one in catalog order,
// wrapping to the first entry after the last.
func Next(location string) (string, error) {
	i, err := IndexOf(location)
	if err != nil {
		return "", err
	}
	return catalog[(i+1)%len(catalog)], nil
}

// LocationAt returns the location at the given 1-based index, matching
// the numbering shown by the locations listing.
func LocationAt(index int) (string, error) {
	if index < 1 || index > len(catalog) {
		return "", fmt.Errorf("location index out of range: %d (have %d locations)", index, len(catalog))
	}
	return catalog[index-1], nil
}
