package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/internal/catalog"
)

// Imports a menu price list from XLSX into the catalog JSON file consumed
// via CATALOG_PATH. Sheet 1 holds products (id, name, base price); an
// optional "Sizes" sheet holds size options (id, label, price adjustment).

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run cmd/menu/main.go <xlsx_file_path> <output_json_path>")
	}

	xlsxPath := os.Args[1]
	outputPath := os.Args[2]

	fmt.Printf("Reading XLSX file: %s\n", xlsxPath)
	cat, err := readCatalogFromXLSX(xlsxPath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	if err := cat.Validate(); err != nil {
		log.Fatal("Catalog is not usable:", err)
	}

	fmt.Printf("Products to import: %d\n", len(cat.Products))
	fmt.Printf("Size options to import: %d\n", len(cat.Sizes))

	fmt.Printf("Write catalog to %s? (yes/no): ", outputPath)
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode catalog:", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		log.Fatal("Failed to write catalog file:", err)
	}

	fmt.Println("Import completed successfully!")
}

func readCatalogFromXLSX(path string) (*catalog.Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	cat := catalog.Default()
	cat.Products = nil

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		price, err := parsePrice(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		cat.Products = append(cat.Products, model.Product{
			ID:        strings.TrimSpace(row[0]),
			Name:      strings.TrimSpace(row[1]),
			BasePrice: price,
		})
	}

	sizes, err := readSizes(f)
	if err != nil {
		return nil, err
	}
	if len(sizes) > 0 {
		cat.Sizes = sizes
	}

	return cat, nil
}

func readSizes(f *excelize.File) ([]model.SizeOption, error) {
	rows, err := f.GetRows("Sizes")
	if err != nil {
		// The sheet is optional; the default size list stays in place.
		return nil, nil
	}

	var sizes []model.SizeOption
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		adjustment, err := parsePrice(row[2])
		if err != nil {
			return nil, fmt.Errorf("sizes row %d: %w", i+1, err)
		}

		sizes = append(sizes, model.SizeOption{
			ID:              strings.TrimSpace(row[0]),
			Label:           strings.TrimSpace(row[1]),
			PriceAdjustment: adjustment,
		})
	}
	return sizes, nil
}

var nonDigits = regexp.MustCompile(`[^0-9-]`)

// parsePrice accepts plain integers as well as formatted cells like
// "Rp15.000" or "15.000".
func parsePrice(cell string) (int64, error) {
	cleaned := nonDigits.ReplaceAllString(strings.TrimSpace(cell), "")
	if cleaned == "" {
		return 0, fmt.Errorf("price cell %q has no digits", cell)
	}
	price, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", cell, err)
	}
	return price, nil
}
