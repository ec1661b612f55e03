package registry

// Allocation blocks for 24-bit aircraft addresses (ICAO Annex 10, Vol. III,
// Chapter 9), expressed as prefixes over the MSB-first binary expansion of the
// address. The matcher takes the first prefix hit in listed order, so more
// specific overlapping entries must stay ahead of broader ones and override
// lists are walked in their own listed order. Military and head-of-state
// blocks that sit inside a civil allocation are expressed as overrides on the
// owning rule, including exact 24-bit matches for individual airframes.

var primaryRules = []Rule{

	// Africa and the Middle East
	{Prefix: "00000000010000", Label: "Zimbabwe"},
	{Prefix: "000000000110", Label: "Mozambique"},
	{Prefix: "000000001", Label: "South Africa"},
	{Prefix: "000000010", Label: "Egypt"},
	{Prefix: "000000011", Label: "Libya"},
	{Prefix: "000000100", Label: "Morocco"},
	{Prefix: "000000101", Label: "Tunisia"},
	{Prefix: "00000011000000", Label: "Botswana"},
	{Prefix: "000000110010", Label: "Burundi"},
	{Prefix: "000000110100", Label: "Cameroon"},
	{Prefix: "00000011010100", Label: "Comoros"},
	{Prefix: "000000110110", Label: "Congo"},
	{Prefix: "000000111000", Label: "Cote d'Ivoire"},
	{Prefix: "000000111110", Label: "Gabon"},
	{Prefix: "000001000000", Label: "Ethiopia"},
	{Prefix: "000001000010", Label: "Equatorial Guinea"},
	{Prefix: "00000100010000", Label: "Ghana"},
	{Prefix: "000001000110", Label: "Guinea"},
	{Prefix: "00000100100000", Label: "Guinea-Bissau"},
	{Prefix: "00000100101000", Label: "Lesotho"},
	{Prefix: "000001001100", Label: "Kenya"},
	{Prefix: "000001010000", Label: "Liberia"},
	{Prefix: "000001010100", Label: "Madagascar"},
	{Prefix: "000001011000", Label: "Malawi"},
	{Prefix: "00000101101000", Label: "Maldives"},
	{Prefix: "000001011100", Label: "Mali"},
	{Prefix: "00000101111000", Label: "Mauritania"},
	{Prefix: "00000110000000", Label: "Mauritius"},
	{Prefix: "000001100010", Label: "Niger"},
	{Prefix: "000001100100", Label: "Nigeria"},
	{Prefix: "000001101000", Label: "Uganda"},
	{Prefix: "00000110101000", Label: "Qatar"},
	{Prefix: "000001101100", Label: "Central African Republic"},
	{Prefix: "000001101110", Label: "Rwanda"},
	{Prefix: "000001110000", Label: "Senegal"},
	{Prefix: "00000111010000", Label: "Seychelles"},
	{Prefix: "00000111011000", Label: "Sierra Leone"},
	{Prefix: "000001111000", Label: "Somalia"},
	{Prefix: "00000111101000", Label: "Swaziland"},
	{Prefix: "000001111100", Label: "Sudan"},
	{Prefix: "000010000000", Label: "Tanzania"},
	{Prefix: "000010000100", Label: "Chad"},
	{Prefix: "000010001000", Label: "Togo"},
	{Prefix: "000010001010", Label: "Zambia"},
	{Prefix: "000010001100", Label: "DR Congo"},
	{Prefix: "000010010000", Label: "Angola"},
	{Prefix: "00001001010000", Label: "Benin"},
	{Prefix: "00001001011000", Label: "Cape Verde"},
	{Prefix: "00001001100000", Label: "Djibouti"},
	{Prefix: "000010011010", Label: "Gambia"},
	{Prefix: "00001001110000", Label: "Burkina Faso"},
	{Prefix: "00001001111000", Label: "Sao Tome & Principe"},
	{Prefix: "000010100", Label: "Algeria"},

	// Caribbean, Central and South America
	{Prefix: "000010101000", Label: "Bahamas"},
	{Prefix: "00001010101000", Label: "Barbados"},
	{Prefix: "00001010101100", Label: "Belize"},
	{Prefix: "000010101100", Label: "Colombia"},
	{Prefix: "000010101110", Label: "Costa Rica"},
	{Prefix: "000010110000", Label: "Cuba"},
	{Prefix: "000010110010", Label: "El Salvador"},
	{Prefix: "000010110100", Label: "Guatemala"},
	{Prefix: "000010110110", Label: "Guyana"},
	{Prefix: "000010111000", Label: "Haiti"},
	{Prefix: "000010111010", Label: "Honduras"},
	{Prefix: "00001011110000", Label: "St. Vincent & the Grenadines"},
	{Prefix: "000010111110", Label: "Jamaica"},
	{Prefix: "000011000000", Label: "Nicaragua"},
	{Prefix: "000011000010", Label: "Panama"},
	{Prefix: "000011000100", Label: "Dominican Republic"},
	{Prefix: "000011000110", Label: "Trinidad & Tobago"},
	{Prefix: "000011001000", Label: "Suriname"},
	{Prefix: "00001100101000", Label: "Antigua & Barbuda"},
	{Prefix: "00001100110000", Label: "Grenada"},
	{Prefix: "000011010", Label: "Mexico"},
	{Prefix: "000011011", Label: "Venezuela"},

	// Russia and former Soviet allocations
	{Prefix: "0001", Label: "Russia"},
	{Prefix: "00100000000100", Label: "Namibia"},
	{Prefix: "00100000001000", Label: "Eritrea"},

	// Western Europe
	{Prefix: "001100", Label: "Italy", Overrides: []Rule{
		{Prefix: "0011001111111111", Label: "Italy (Military)"},
	}},
	{Prefix: "001101", Label: "Spain", Overrides: []Rule{
		{Prefix: "00110101", Label: "Spain (Military)"},
		{Prefix: "0011011", Label: "Spain (Military)"},
	}},
	{Prefix: "001110", Label: "France", Overrides: []Rule{
		{Prefix: "001110101", Label: "France (Military)"},
		{Prefix: "00111011", Label: "France (Military)"},
	}},
	{Prefix: "001111", Label: "Germany", Overrides: []Rule{
		{Prefix: "00111110101", Label: "Germany (Military)"},
		{Prefix: "0011111101", Label: "Germany (Military)"},
		{Prefix: "0011111110", Label: "Germany (Military)"},
	}},
	{Prefix: "010000", Label: "United Kingdom", Overrides: []Rule{
		{Prefix: "010000111100", Label: "U.K. Military"},
	}},
	{Prefix: "010001000", Label: "Austria"},
	{Prefix: "010001001", Label: "Belgium"},
	{Prefix: "010001010", Label: "Bulgaria"},
	{Prefix: "010001011", Label: "Denmark"},
	{Prefix: "010001100", Label: "Finland"},
	{Prefix: "010001101", Label: "Greece"},
	{Prefix: "010001110", Label: "Hungary"},
	{Prefix: "010001111", Label: "Norway"},
	{Prefix: "010010000", Label: "Netherlands"},
	{Prefix: "010010001", Label: "Poland"},
	{Prefix: "010010010", Label: "Portugal"},
	{Prefix: "010010011", Label: "Czech Republic"},
	{Prefix: "010010100", Label: "Romania"},
	{Prefix: "010010101", Label: "Sweden"},
	{Prefix: "010010110", Label: "Switzerland"},
	{Prefix: "010010111", Label: "Turkey"},
	{Prefix: "010011000", Label: "Serbia"},
	{Prefix: "01001100100000", Label: "Cyprus"},
	{Prefix: "010011001010", Label: "Ireland"},
	{Prefix: "010011001100", Label: "Iceland"},
	{Prefix: "01001101000000", Label: "Luxembourg"},
	{Prefix: "01001101001000", Label: "Malta"},
	{Prefix: "01001101010000", Label: "Monaco"},

	// Eastern Europe and Central Asia
	{Prefix: "01010000000000", Label: "San Marino"},
	{Prefix: "01010000000100", Label: "Albania"},
	{Prefix: "01010000000111", Label: "Croatia"},
	{Prefix: "01010000001011", Label: "Latvia"},
	{Prefix: "01010000001111", Label: "Lithuania"},
	{Prefix: "01010000010011", Label: "Moldova"},
	{Prefix: "01010000010111", Label: "Slovakia"},
	{Prefix: "01010000011011", Label: "Slovenia"},
	{Prefix: "01010000011111", Label: "Uzbekistan"},
	{Prefix: "010100001", Label: "Ukraine"},
	{Prefix: "01010001000000", Label: "Belarus"},
	{Prefix: "01010001000100", Label: "Estonia"},
	{Prefix: "01010001001000", Label: "Macedonia"},
	{Prefix: "01010001001100", Label: "Bosnia & Herzegovina"},
	{Prefix: "01010001010000", Label: "Georgia"},
	{Prefix: "01010001010100", Label: "Tajikistan"},
	{Prefix: "01010001011000", Label: "Turkmenistan"},
	{Prefix: "01100000000000", Label: "Armenia"},
	{Prefix: "01100000000010", Label: "Azerbaijan"},
	{Prefix: "01100000000100", Label: "Kyrgyzstan"},
	{Prefix: "01100000000110", Label: "Montenegro"},
	{Prefix: "01101000000000", Label: "Mongolia"},
	{Prefix: "01101000000100", Label: "Kazakhstan"},
	{Prefix: "01101000001000", Label: "Bhutan"},

	// Asia, Middle East and Pacific
	{Prefix: "011100000000", Label: "Afghanistan"},
	{Prefix: "011100000010", Label: "Bangladesh"},
	{Prefix: "011100000100", Label: "Myanmar"},
	{Prefix: "011100000110", Label: "Kuwait"},
	{Prefix: "011100001000", Label: "Laos"},
	{Prefix: "011100001010", Label: "Nepal"},
	{Prefix: "01110000110000", Label: "Oman"},
	{Prefix: "011100001110", Label: "Cambodia"},
	{Prefix: "011100010", Label: "Saudi Arabia"},
	{Prefix: "011100011", Label: "South Korea"},
	{Prefix: "011100100", Label: "North Korea"},
	{Prefix: "011100101", Label: "Iraq"},
	{Prefix: "011100110", Label: "Iran"},
	{Prefix: "011100111", Label: "Israel"},
	{Prefix: "011101000", Label: "Jordan"},
	{Prefix: "011101001", Label: "Lebanon"},
	{Prefix: "011101010", Label: "Malaysia"},
	{Prefix: "011101011", Label: "Philippines"},
	{Prefix: "011101100", Label: "Pakistan"},
	{Prefix: "011101101", Label: "Singapore"},
	{Prefix: "011101110", Label: "Sri Lanka"},
	{Prefix: "011101111", Label: "Syria"},
	{Prefix: "011110", Label: "China"},
	{Prefix: "011111", Label: "Australia"},
	{Prefix: "100000", Label: "India"},
	{Prefix: "100001", Label: "Japan"},
	{Prefix: "100010000", Label: "Thailand"},
	{Prefix: "100010001", Label: "Vietnam"},
	{Prefix: "100010010000", Label: "Yemen"},
	{Prefix: "100010010100", Label: "Bahrain"},
	{Prefix: "10001001010100", Label: "Brunei"},
	{Prefix: "100010010110", Label: "United Arab Emirates"},
	{Prefix: "10001001011100", Label: "Solomon Islands"},
	{Prefix: "100010011000", Label: "Papua New Guinea"},
	{Prefix: "10001001100100", Label: "Taiwan"},
	{Prefix: "100010100", Label: "Indonesia"},
	{Prefix: "10010000000000", Label: "Marshall Islands"},
	{Prefix: "10010000000100", Label: "Cook Islands"},
	{Prefix: "10010000001000", Label: "Samoa"},

	// North America and Pacific
	{Prefix: "1010", Label: "U.S.", Overrides: []Rule{
		{Prefix: "101011011111110111111000", Label: "U.S. Air Force One"},
		{Prefix: "101011011111110111111001", Label: "U.S. Air Force One"},
		{Prefix: "10101110", Label: "U.S. Military"},
		{Prefix: "10101111", Label: "U.S. Military"},
	}},
	{Prefix: "110000", Label: "Canada"},
	{Prefix: "110010000", Label: "New Zealand"},
	{Prefix: "110010001000", Label: "Fiji"},
	{Prefix: "11001000101000", Label: "Nauru"},
	{Prefix: "11001000110000", Label: "Saint Lucia"},
	{Prefix: "11001000110100", Label: "Tonga"},
	{Prefix: "11001000111000", Label: "Kiribati"},
	{Prefix: "11001001000000", Label: "Vanuatu"},

	// South America
	{Prefix: "111000", Label: "Argentina"},
	{Prefix: "111001", Label: "Brazil"},
	{Prefix: "111010000000", Label: "Chile"},
	{Prefix: "111010000100", Label: "Ecuador"},
	{Prefix: "111010001000", Label: "Paraguay"},
	{Prefix: "111010001100", Label: "Peru"},
	{Prefix: "111010010000", Label: "Uruguay"},
	{Prefix: "111010010100", Label: "Bolivia"},
}

// fallbackRules cover blocks with no national assignment. They are evaluated
// only when nothing in primaryRules matched. Blocks that ICAO has not placed
// at all (for example 0xD00000 and most of 0xF00000) are deliberately absent
// so those addresses fall through to the unknown-registry sentinel.
var fallbackRules = []Rule{
	{Prefix: "11110000", Label: "ICAO Special Use"},
	{Prefix: "0000", Label: "Reserved (AFI Region)"},
	{Prefix: "0010", Label: "Reserved (AFI Region)"},
	{Prefix: "0100", Label: "Reserved (EUR/NAT Region)"},
	{Prefix: "0101", Label: "Reserved (EUR/NAT Region)"},
	{Prefix: "0110", Label: "Reserved (MID Region)"},
	{Prefix: "0111", Label: "Reserved (ASIA Region)"},
	{Prefix: "1000", Label: "Reserved (ASIA Region)"},
	{Prefix: "1001", Label: "Reserved (NAM/PAC Region)"},
	{Prefix: "1011", Label: "Reserved (CAR Region)"},
	{Prefix: "1100", Label: "Reserved (NAM/PAC Region)"},
	{Prefix: "1110", Label: "Reserved (SAM Region)"},
}
