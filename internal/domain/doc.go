// Package domain models yearly FARS-style traffic accident report data.
//
// # Data Source
//
// Accident records come from yearly extracts in the style of the NHTSA
// Fatality Analysis Reporting System (FARS). Each reporting year lives in a
// single bzip2-compressed CSV named by a fixed convention:
//
//	accident_<year>.csv.bz2
//
// in a flat data directory. Files carry dozens of columns; this pipeline
// consumes only STATE, MONTH and the coordinate pair.
//
// # Column Conventions
//
// STATE:
//
//	Integer administrative region code (FIPS-style), e.g. 48 = Texas.
//	Codes are validated only against the loaded data, never against a
//	static list: a code is "valid" for a year when at least one of that
//	year's rows carries it.
//
// MONTH:
//
//	Integer 1-12.
//
// LATITUDE / LONGITUD:
//
//	Decimal degrees, negative-west longitude. Older extracts truncate the
//	headers (LATITUD, LONGITUD); both spellings are accepted.
//
// Unknown coordinates:
//
//	The source encodes missing GPS data with out-of-range sentinels rather
//	than blanks: longitudes above 900 (e.g. 999.9999) and latitudes above
//	90 (e.g. 99.9999). [NewPoint] converts these to missing coordinates;
//	from that point onward "missing" is a first-class state, not an
//	overloaded numeric range.
package domain
