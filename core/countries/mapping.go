package countries

// DefaultOverrides returns the correction map applied before any reference
// lookup. Keys are the exact cleaned inputs seen in scraped data, values the
// canonical names the catalog uses. A fresh copy is returned so callers can
// extend it without affecting others.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"USA":                      "United States",
		"UAE":                      "United Arab Emirates",
		"UK":                       "United Kingdom",
		"British Virgin":           "British Virgin Islands",
		"Virgin Islands":           "US Virgin Islands",
		"Spain (Europe)":           "Spain",
		"Turks   Caicos":           "Turks and Caicos Islands",
		"St Lucia":                 "Saint Lucia",
		"St Kitts":                 "Saint Kitts and Nevis",
		"Ivory Coast":              "Côte d'Ivoire",
		"St Barthelemy":            "Saint Barthélemy",
		"Christmas":                "Christmas Island",
		"Tobago":                   "Trinidad and Tobago",
		"Solomon":                  "Solomon Islands",
		"Brunei":                   "Brunei Darussalam",
		"Northern Mariana Islands": "Mariana Islands",
		"Congo":                    "Republic of the Congo",
		"Cook":                     "Cook Islands",
		"Faroe":                    "Faroe Islands",
		"Samoa American":           "American Samoa",
		"Samoa Western":            "Samoa",
		"Cayman":                   "Cayman Islands",
		"Hong Kong":                "China",
		"Spain (Africa)":           "Canary Islands",
	}
}
