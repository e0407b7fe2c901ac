package services

type StaticResource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	Category    string `json:"category"`
}

type ExternalLink struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

type EmergencyContact struct {
	Title       string `json:"title"`
	Phone       string `json:"phone"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

var publicResources = []StaticResource{
	{Title: "Drug Awareness Handbook", Description: "Comprehensive guide to understanding different types of drugs and their effects.", Type: "PDF", Size: "2.5 MB", Category: "Education"},
	{Title: "Prevention Strategies Guide", Description: "Evidence-based strategies for preventing substance abuse among students.", Type: "PDF", Size: "1.8 MB", Category: "Prevention"},
	{Title: "Campus Support Services", Description: "Directory of all available support services at Haramaya University.", Type: "PDF", Size: "1.2 MB", Category: "Support"},
	{Title: "Healthy Coping Mechanisms", Description: "Learn healthy ways to cope with stress and academic pressure.", Type: "PDF", Size: "900 KB", Category: "Wellness"},
}

var externalLinks = []ExternalLink{
	{Title: "National Institute on Drug Abuse (NIDA)", Description: "Research-based information on drug abuse and addiction.", URL: "https://www.drugabuse.gov/", Category: "Research"},
	{Title: "SAMHSA National Helpline", Description: "24/7 treatment referral and information service.", URL: "https://www.samhsa.gov/find-help/national-helpline", Category: "Support"},
	{Title: "Partnership to End Addiction", Description: "Resources for families and individuals affected by addiction.", URL: "https://drugfree.org/", Category: "Family Support"},
	{Title: "Substance Abuse Prevention", Description: "CDC resources on substance abuse prevention.", URL: "https://www.cdc.gov/substance-abuse/", Category: "Prevention"},
}

var emergencyContacts = []EmergencyContact{
	{Title: "Campus Health Center", Phone: "+251-25-553-0325", Hours: "24/7 Emergency", Description: "Immediate medical assistance and crisis intervention"},
	{Title: "Student Counseling Services", Phone: "+251-25-553-0326", Hours: "Mon-Fri 8AM-5PM", Description: "Professional counseling and mental health support"},
	{Title: "Campus Security", Phone: "+251-25-553-0327", Hours: "24/7", Description: "Campus safety and emergency response"},
	{Title: "National Drug Helpline", Phone: "952", Hours: "24/7 Free", Description: "National substance abuse helpline"},
}

func EmergencyContacts() []EmergencyContact {
	out := make([]EmergencyContact, len(emergencyContacts))
	copy(out, emergencyContacts)
	return out
}
