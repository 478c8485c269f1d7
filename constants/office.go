package constants

// OfficeTerms are the words that mark a line as a contest title. A line
// containing any of them (and not blacklisted) opens a contest segment.
var OfficeTerms = []string{
	"City", "Proposition", "Town", "Village", "School", "Representative",
	"Governor", "General", "Public", "Municipal Utility", "Supreme",
	"Clerk", "Attorney", "Court", "Board", "Judge", "Commissioner",
	"Member", "Justice", "Lieutenant", "Comptroller", "Railroad",
	"Senator", "Criminal", "Family", "Probate", "Peace", "Library",
	"Council", "Independent", "Councilmember", "Trustee", "District",
	"Place", "Chair", "County Constable", "Assessor",
}

// BlacklistTitles are report-decoration prefixes that would otherwise
// pass the office-term check. They never open a contest.
var BlacklistTitles = []string{
	"Precinct Results Report",
	"Official Results",
	"Unofficial Results",
	"Summary Report",
	"Page",
	"Continued",
	"County",
	"Election",
	"Ballots Cast",
	"Registered Voters",
}

// PhraseModifiers are secondary title qualifiers captured into the
// contest modifier when joined by a hyphen or comma.
var PhraseModifiers = []string{
	"Three Year Term", "Two Year Term", "Unexpired", "Incumbent",
}
