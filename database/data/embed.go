package data

import (
	_ "embed"
)

//go:embed catalog.csv
var CatalogCSV string
