package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CountryCode is prepended to every normalized client phone number (Brazil)
const CountryCode = "55"

// Phone number length constants (digits only, without country code)
const (
	LandlinePhoneDigits = 10 // area code (2) + 8-digit line
	MobilePhoneDigits   = 11 // area code (2) + 9-digit mobile number
)

// MobilePrefix is the mandatory first subscriber digit of an 11-digit mobile number
const MobilePrefix = '9'
