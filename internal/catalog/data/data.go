package data

import _ "embed"

//go:embed airline_codes.json
var AirlineCodes []byte

//go:embed iata_codes.json
var IATACodes []byte
