package models

// Document titles every advert must request from candidates.
// They are seeded into a draft and cannot be removed.
var CompulsoryDocuments = []string{
	"Curriculum Vitae (CV)",
}

// Built-in compliance checklist items. Tenants may define custom items on
// top, but the built-in set itself is immutable.
var BuiltInComplianceItems = []string{
	"Right to Work Check",
	"DBS Check",
	"Reference Check",
	"Qualification Verification",
}

func IsCompulsoryDocument(title string) bool {
	for _, doc := range CompulsoryDocuments {
		if doc == title {
			return true
		}
	}
	return false
}

func IsBuiltInComplianceItem(name string) bool {
	for _, item := range BuiltInComplianceItems {
		if item == name {
			return true
		}
	}
	return false
}
