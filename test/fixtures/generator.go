// Package fixtures generates miniature dataset files matching the exact
// layouts of the real exports, for package and integration tests.
package fixtures

import (
	"encoding/csv"
	"os"
	"path/filepath"
)

// Paths holds the locations of a generated dataset family
type Paths struct {
	Population     string
	Unemployment   string
	Income         string
	ExchangeRate   string
	CPI            string
	ConfirmedCases string
	FoodSecurity   string
}

// Known values encoded by the standard fixture set, for test assertions.
const (
	CanadaPopulation   = 38005238
	CanadaCases        = 1.55
	CanadaUnemployment = 9.48
	CanadaCPI          = 107.02
	CanadaIncomeLocal  = 72259.55
	CanadaIncomeUSD    = 56674.16
	CanadaInsecurity   = 22.0
)

// WriteAll writes the standard fixture datasets into dir and returns
// their paths.
func WriteAll(dir string) (Paths, error) {
	paths := Paths{
		Population:     filepath.Join(dir, "population.csv"),
		Unemployment:   filepath.Join(dir, "unemployment.csv"),
		Income:         filepath.Join(dir, "income.csv"),
		ExchangeRate:   filepath.Join(dir, "exchange_rates.csv"),
		CPI:            filepath.Join(dir, "cpi.csv"),
		ConfirmedCases: filepath.Join(dir, "confirmed_cases.csv"),
		FoodSecurity:   filepath.Join(dir, "food_security.json"),
	}

	writers := []struct {
		path string
		rows [][]string
	}{
		{paths.Population, populationRows()},
		{paths.Unemployment, unemploymentRows()},
		{paths.Income, incomeRows()},
		{paths.ExchangeRate, exchangeRows()},
		{paths.CPI, cpiRows()},
		{paths.ConfirmedCases, confirmedCasesRows()},
	}
	for _, w := range writers {
		if err := writeCSV(w.path, w.rows); err != nil {
			return Paths{}, err
		}
	}

	if err := os.WriteFile(paths.FoodSecurity, []byte(foodSecurityJSON), 0644); err != nil {
		return Paths{}, err
	}

	return paths, nil
}

// writeCSV writes rows to path as a CSV file
func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// populationRows mimics the World Bank population export: 4 metadata rows,
// a header row, then country rows with the 2020 value second from the end.
func populationRows() [][]string {
	return [][]string{
		{"Data Source", "World Development Indicators"},
		{"Last Updated Date", "2021-12-16"},
		{"Scale", "Units"},
		{"Shape", "Country rows follow the header"},
		{"Country Name", "Country Code", "2019", "2020", ""},
		{"Canada", "CAN", "37601230", "38005238", ""},
		{"United States", "USA", "328329953", "331002651", ""},
		{"Korea, Rep.", "KOR", "51764822", "51780579", ""},
		{"France", "FRA", "67248926", "67391582", ""},
		{"Japan", "JPN", "126633000", "125836021", ""},
		{"Elbonia", "ELB", "..", "..", ""},
		{"Nulland", "NUL", "0", "0", ""},
	}
}

// unemploymentRows uses the same layout as the population export with the
// 2020 annual rate second from the end.
func unemploymentRows() [][]string {
	return [][]string{
		{"Data Source", "World Development Indicators"},
		{"Last Updated Date", "2021-12-16"},
		{"Scale", "Percent of labor force"},
		{"Shape", "Country rows follow the header"},
		{"Country Name", "Country Code", "2019", "2020", ""},
		{"Canada", "CAN", "5.66", "9.48", ""},
		{"United States", "USA", "3.67", "8.05", ""},
		{"Korea, Rep.", "KOR", "3.76", "4.53", ""},
		{"France", "FRA", "8.41", "8.01", ""},
		{"Japan", "JPN", "2.29", "2.80", ""},
		{"Zerostan", "ZRS", "0.1", "0.0", ""},
	}
}

// incomeRows mimics the OECD annual wage export: header row, country in
// column 1, year in column 5, value in column 12.
func incomeRows() [][]string {
	row := func(country, year, value string) []string {
		return []string{"AW", country, "AVWAGE", "Average annual wages", "LCU",
			year, year, "National currency", "0", "units", "", "", value}
	}
	return [][]string{
		{"STRUCTURE", "Country", "SERIES", "Series", "UNIT",
			"Time", "TIME", "Unit", "PowerCode", "Code", "Reference", "Flags", "Value"},
		row("Canada", "2019", "70051.35"),
		row("Canada", "2020", "72259.55"),
		row("United States", "2020", "69391.99"),
		row("Euro Zone", "2020", "32400.00"),
		row("Korea", "2020", "41960170.00"),
		row("Japan", "2020", "4240000.00"),
		row("Glitchland", "2020", "100.00"),
	}
}

// exchangeRows mimics the treasury exchange-rate export: header row,
// country/region label in column 1, rate to USD in column 4.
func exchangeRows() [][]string {
	return [][]string{
		{"Effective Date", "Country", "Currency", "Currency Code", "Exchange Rate"},
		{"2020-12-31", "Canada", "Canadian Dollar", "CAD", "1.275"},
		{"2020-12-31", "Euro Zone", "Euro", "EUR", "0.82"},
		{"2020-12-31", "Korea", "Won", "KRW", "1086.3"},
		{"2020-12-31", "Japan", "Yen", "JPY", "103.25"},
		{"2020-12-31", "Brokenland", "Shell", "SHL", "0.0"},
		{"2020-12-31", "Glitchland", "Glitch", "GLC", "0.0"},
	}
}

// cpiRows mimics the FAOSTAT monthly food CPI export: header row, country
// in column 3, monthly value in column 11; 12 rows per country.
func cpiRows() [][]string {
	rows := [][]string{
		{"Domain Code", "Domain", "Area Code", "Area", "Element Code", "Element",
			"Item Code", "Item", "Year Code", "Year", "Months", "Value"},
	}

	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}

	canada := []string{"106.52", "106.62", "106.72", "106.82", "106.92", "107.02",
		"107.12", "107.22", "107.32", "107.42", "107.52", "107.02"}

	appendCountry := func(area string, values []string) {
		for i, m := range months {
			value := values[0]
			if len(values) == len(months) {
				value = values[i]
			}
			rows = append(rows, []string{"CP", "Consumer Price Indices", "0", area,
				"6121", "CPI Food", "23013", "Food indices", "2020", "2020", m, value})
		}
	}

	appendCountry("Canada", canada)
	appendCountry("United States of America", []string{"108.70"})
	appendCountry("Republic of Korea", []string{"104.35"})
	appendCountry("France", []string{"105.12"})
	appendCountry("Japan", []string{"101.80"})

	// Present in the real export; must never bleed into South Korea.
	rows = append(rows, []string{"CP", "Consumer Price Indices", "0",
		"Democratic People's Republic of Korea", "6121", "CPI Food", "23013",
		"Food indices", "2020", "2020", "January", "999.99"})

	return rows
}

// confirmedCasesRows mimics the OWID COVID time-series export: 8 metadata
// rows, then rows with a non-empty guard in column 1, country in column 2,
// date in column 3, cumulative count in column 4.
func confirmedCasesRows() [][]string {
	meta := [][]string{
		{"Source", "Our World in Data"},
		{"Subset", "Cumulative confirmed cases"},
		{"Window", "2020"},
		{"Granularity", "Daily"},
		{"Keyed", "By country and date"},
		{"Guard", "Column 1 is non-empty for data rows"},
		{"Note", "Counts are cumulative"},
		{"Note", "Dates are ISO-8601"},
	}

	data := [][]string{
		{"x", "CAN", "Canada", "2020-12-31", "589081"},
		{"x", "USA", "United States of America", "2020-12-31", "19860159"},
		{"x", "KOR", "South Korea", "2020-12-31", "60740"},
		{"x", "FRA", "France", "2020-12-31", "2600000"},
		{"x", "JPN", "Japan", "2020-12-31", "230304"},
		{"x", "CAN", "Canada", "2020-12-30", "580000"},
		{"x", "", "Ghostland", "2020-12-31", "123"},
		{"x", "NUL", "Nulland", "2020-12-31", "55"},
		{"x", "ATL", "Atlantis", "2020-12-31", "99"},
		{"x", "JPN", "Japan", "2020-12-31", ""},
	}

	return append(meta, data...)
}

// foodSecurityJSON is the scraped food-security document: an array of
// single-entry country-to-score objects, scores emitted as strings.
const foodSecurityJSON = `[
  {"Canada": "78.0"},
  {"United States": "82.5"},
  {"France": "83.0"},
  {"Japan": "79.3"},
  {"South Korea": "72.1"}
]`
