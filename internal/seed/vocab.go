// ABOUTME: Fixed vocabularies for company, contact, note, prospect, and activity fields.
// ABOUTME: Pure data; the generators pick from these lists through a Source.

package seed

var (
	industries = []string{"Technology", "Healthcare", "Finance", "Manufacturing", "Retail", "Education",
		"Telecommunications", "Energy", "Transportation", "Hospitality", "Media", "Construction"}

	companyTypes = []string{"Corporation", "LLC", "Partnership", "Sole Proprietorship", "Non-Profit"}

	companyPrefixes = []string{"Tech", "Global", "Advanced", "Premier", "Elite", "Innovative", "Strategic",
		"Dynamic", "Precision", "Unified", "Integrated", "Smart", "Digital", "Modern"}

	companySuffixes = []string{"Solutions", "Systems", "Technologies", "Industries", "Enterprises", "Group",
		"Partners", "Associates", "Services", "Innovations", "Networks", "Dynamics"}

	companyDescriptors = []string{"International", "Consulting", "Development", "Management", "Analytics",
		"Engineering", "Communications", "Healthcare", "Financial", "Manufacturing"}

	letters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z"}

	countries = []string{"United States", "Canada", "United Kingdom", "Germany", "France", "Australia",
		"Japan", "Singapore", "Brazil", "India", "Spain", "Italy", "Netherlands"}

	statesUS = []string{"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL",
		"IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT",
		"NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
		"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY"}

	citiesUS = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
		"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
		"Fort Worth", "Columbus", "San Francisco", "Charlotte", "Indianapolis", "Seattle",
		"Denver", "Washington", "Boston", "Nashville", "Baltimore", "Portland", "Las Vegas"}

	streetNames = []string{"Main", "First", "Second", "Third", "Fourth", "Fifth", "Oak", "Pine", "Maple",
		"Cedar", "Elm", "Washington", "Lincoln", "Jefferson", "Roosevelt", "Madison", "Adams", "Wilson",
		"Jackson", "Monroe"}

	streetSuffixes = []string{"Street", "Avenue", "Boulevard", "Road", "Lane", "Drive", "Court", "Place",
		"Circle", "Way"}

	accountStatuses = []string{"Active", "Inactive", "Prospect", "Lead", "Customer", "Former Customer", "On Hold"}

	agents = []string{"Alex Johnson", "Sam Williams", "Taylor Smith", "Jordan Brown", "Casey Davis"}

	publicEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "aol.com", "protonmail.com"}

	firstNames = []string{"John", "Jane", "Robert", "Mary", "Michael", "Linda", "William", "Patricia",
		"David", "Jennifer", "Richard", "Elizabeth", "Joseph", "Susan", "Thomas", "Jessica", "Charles",
		"Sarah", "Daniel", "Karen"}

	lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin"}

	titles = []string{"CEO", "CTO", "CFO", "COO", "President", "Vice President", "Director", "Manager",
		"Supervisor", "Team Lead", "Specialist", "Analyst", "Coordinator", "Administrator", "Assistant"}

	// Prospects synthesized for accounts without contacts draw from these shorter lists.
	fallbackFirstNames = firstNames[:10]
	fallbackLastNames  = lastNames[:10]
	fallbackTitles     = titles[:10]
)

// Note templates. Each {placeholder} is filled from noteVocab or a computed value.
var noteTemplates = []string{
	"Had a call with {contact_name} about their {topic}. They expressed interest in our {product} solution. Follow up in {days} days.",
	"Met with {contact_name} to discuss {topic}. They have concerns about {concern} but are open to a proposal.",
	"{contact_name} requested information about {topic}. Sent over materials and scheduled a follow-up for next {day_of_week}.",
	"Quarterly review with {contact_name}. Account is {status}. Key issues: {concern}. Next steps: {next_steps}.",
	"Support call with {contact_name} regarding {concern}. Issue {resolution_status}. Follow-up needed: {follow_up}.",
	"Contract renewal discussion with {contact_name}. Current contract expires on {date}. They want to {renewal_action}.",
	"Product demo for {contact_name} and team. They were particularly interested in {feature}. Questions about {topic}.",
	"Strategy meeting with {contact_name}. Discussed expansion opportunities in {area}. They plan to {plan}.",
	"Troubleshooting session with {contact_name} on {topic}. Issue was related to {concern}. Resolution: {resolution}.",
	"Annual review with {contact_name}. Overall satisfaction: {satisfaction}. Areas for improvement: {improvement}.",
}

var noteVocab = map[string][]string{
	"topic": {"product features", "pricing", "implementation timeline", "technical specifications", "support options",
		"integration capabilities", "customization options", "training requirements", "contract terms", "expansion plans"},
	"product": {"CRM", "ERP", "HCM", "SCM", "BI", "AI", "ML", "IoT", "Cloud", "Security", "Analytics", "Mobile", "Web", "Desktop"},
	"concern": {"pricing", "implementation timeline", "technical complexity", "resource requirements", "ROI",
		"compatibility", "scalability", "security", "compliance", "support availability"},
	"day_of_week": {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	"status":      {"performing well", "stable", "growing", "declining", "at risk", "exceeding expectations", "below target"},
	"next_steps": {"schedule follow-up call", "send proposal", "arrange demo", "provide case studies",
		"connect with technical team", "review contract", "discuss discount options"},
	"resolution_status": {"resolved", "pending", "escalated", "under investigation", "requires further action"},
	"follow_up":         {"Yes", "No"},
	"renewal_action": {"renew at current terms", "upgrade package", "downgrade package", "renegotiate terms",
		"evaluate competitors", "extend for short term", "cancel service"},
	"feature": {"reporting dashboard", "mobile access", "automation tools", "integration capabilities",
		"customization options", "user management", "analytics", "security features"},
	"area": {"North America", "Europe", "Asia", "Latin America", "Australia", "Africa", "Middle East"},
	"plan": {"increase budget", "add more users", "expand to new department", "implement additional modules",
		"upgrade to premium tier", "pilot new features", "roll out globally"},
	"resolution": {"configuration change", "software update", "training provided", "workaround implemented",
		"feature request submitted", "bug fix scheduled", "hardware upgrade recommended"},
	"satisfaction": {"Excellent", "Good", "Satisfactory", "Mixed", "Poor", "Very Poor"},
	"improvement": {"response time", "product reliability", "feature set", "user interface", "documentation",
		"training materials", "support availability", "pricing structure"},
}

var (
	prospectStatuses = []string{"Lead", "Qualified Lead", "Opportunity", "Proposal", "Negotiation",
		"Closed Won", "Closed Lost", "On Hold"}
	prospectSources = []string{"Website", "Referral", "Trade Show", "Cold Call", "Email Campaign",
		"Social Media", "Partner", "Webinar", "Content Download", "Direct Mail"}
	prospectInterests = []string{"Product Demo", "Pricing Information", "Technical Specifications",
		"Case Studies", "Free Trial", "Consultation", "Implementation Support", "Training",
		"Custom Solution", "Integration"}
	nextSteps = []string{"Follow-up call", "Send proposal", "Schedule demo", "Technical discussion",
		"Contract review", "Needs analysis", "Decision meeting"}

	activityTypes = []string{"Email", "Call", "Meeting", "Demo", "Proposal", "Contract", "Support",
		"Training", "Implementation", "Review"}
	activityStatuses   = []string{"Completed", "Scheduled", "Cancelled", "Postponed", "In Progress", "Pending"}
	activityPriorities = []string{"Low", "Medium", "High", "Urgent"}
	activityOutcomes   = []string{"Positive", "Neutral", "Negative", "Inconclusive", "Requires Follow-up"}
	durationsMinutes   = []int{15, 30, 45, 60, 90, 120}
	quarterHours       = []int{0, 15, 30, 45}
)

// timedActivityTypes carry a duration.
var timedActivityTypes = map[string]bool{"Meeting": true, "Demo": true, "Training": true}

var activityDescriptions = map[string][]string{
	"Email": {
		"Sent follow-up email to {first_name} regarding their interest in our products.",
		"Email response from {first_name} with questions about pricing and features.",
		"Sent product information email to {first_name} as requested.",
		"Email introduction to {first_name} from marketing team.",
		"Sent proposal via email to {first_name} for review.",
	},
	"Call": {
		"Discovery call with {first_name} to understand their needs.",
		"Follow-up call with {first_name} to discuss proposal.",
		"Cold call to {first_name} to introduce our services.",
		"Call with {first_name} to address concerns about implementation.",
		"Scheduled call with {first_name} to discuss next steps.",
	},
	"Meeting": {
		"Initial meeting with {first_name} and team to present our solutions.",
		"Strategy meeting with {first_name} to discuss implementation plan.",
		"Executive meeting with {first_name} and decision makers.",
		"Project kickoff meeting with {first_name} and stakeholders.",
		"Quarterly review meeting with {first_name} to discuss progress.",
	},
	"Demo": {
		"Product demonstration for {first_name} and team.",
		"Technical demo focusing on integration capabilities for {first_name}.",
		"Custom demo addressing specific use cases for {first_name}.",
		"Follow-up demo with {first_name} to show additional features.",
		"Executive demo for {first_name} and C-level stakeholders.",
	},
	"Proposal": {
		"Sent initial proposal to {first_name} for review.",
		"Revised proposal based on feedback from {first_name}.",
		"Proposal presentation meeting with {first_name} and team.",
		"Final proposal adjustments as requested by {first_name}.",
		"Proposal acceptance confirmation from {first_name}.",
	},
	"Contract": {
		"Sent contract to {first_name} for signature.",
		"Contract negotiation call with {first_name} and legal team.",
		"Contract amendments as requested by {first_name}.",
		"Contract signed by {first_name} and returned.",
		"Contract renewal discussion with {first_name}.",
	},
	"Support": {
		"Technical support call with {first_name} regarding implementation.",
		"Resolved issue reported by {first_name} with our product.",
		"Support ticket opened by {first_name} for feature request.",
		"Follow-up on support case with {first_name}.",
		"Proactive support check-in with {first_name}.",
	},
	"Training": {
		"Initial training session with {first_name} and team.",
		"Advanced features training for {first_name} and power users.",
		"Administrator training for {first_name}'s IT team.",
		"Custom workflow training as requested by {first_name}.",
		"Refresher training session with {first_name}'s new team members.",
	},
	"Implementation": {
		"Implementation planning meeting with {first_name} and IT team.",
		"Data migration discussion with {first_name}.",
		"Implementation progress review with {first_name}.",
		"Implementation issue resolution for {first_name}.",
		"Final implementation sign-off meeting with {first_name}.",
	},
	"Review": {
		"Quarterly business review with {first_name} to discuss results.",
		"Product feedback session with {first_name} and users.",
		"Performance review meeting with {first_name}.",
		"ROI analysis presentation for {first_name} and executives.",
		"Annual contract review with {first_name}.",
	},
}

// outcomeNote is a notes template; {choice} is filled from choices when present.
type outcomeNote struct {
	text    string
	choices []string
}

var outcomeNotes = map[string][]outcomeNote{
	"Positive": {
		{"{first_name} expressed strong interest in our solution. They particularly liked our {choice}.",
			[]string{"pricing model", "feature set", "integration capabilities", "support options", "implementation timeline"}},
		{"Very productive {activity}. {first_name} is ready to move forward with next steps.", nil},
		{"{first_name} agreed to our proposal and wants to proceed quickly.", nil},
		{"Great response from {first_name}. They see clear value in our offering.", nil},
		{"{first_name} confirmed budget approval and is eager to get started.", nil},
	},
	"Neutral": {
		{"{first_name} needs more time to consider options. Will follow up next week.", nil},
		{"{first_name} requested additional information about {choice}.",
			[]string{"pricing", "features", "technical specifications", "implementation process", "support options"}},
		{"Standard {activity} with {first_name}. No major developments.", nil},
		{"{first_name} is still evaluating competitors. Need to emphasize our differentiators.", nil},
		{"{first_name} wants to involve more stakeholders before making a decision.", nil},
	},
	"Negative": {
		{"{first_name} expressed concerns about our {choice}.",
			[]string{"pricing", "implementation timeline", "feature limitations", "support model", "contract terms"}},
		{"Difficult {activity} with {first_name}. They are leaning toward a competitor.", nil},
		{"{first_name} has budget constraints that may delay the project.", nil},
		{"{first_name} found our solution doesn't meet their requirements for {choice}.",
			[]string{"scalability", "customization", "integration", "reporting", "security"}},
		{"{first_name} is putting the project on hold due to internal reorganization.", nil},
	},
	"Inconclusive": {
		{"Unable to cover all agenda items with {first_name}. Need to schedule follow-up.", nil},
		{"{first_name} had limited time for our {activity}. Will need to reconnect.", nil},
		{"Technical issues prevented full {activity} with {first_name}. Rescheduling.", nil},
		{"{first_name} was unprepared for discussion. Need to resend materials and follow up.", nil},
		{"Mixed signals from {first_name}. Need to clarify their priorities.", nil},
	},
	"Requires Follow-up": {
		{"{first_name} requested follow-up with more detailed {choice}.",
			[]string{"pricing", "technical specifications", "case studies", "implementation plan", "ROI analysis"}},
		{"Need to schedule technical team meeting with {first_name}'s IT department.", nil},
		{"{first_name} wants to see a custom demo addressing their specific use case.", nil},
		{"Action item: Send {first_name} the requested documentation by end of week.", nil},
		{"{first_name} asked for references from similar companies in their industry.", nil},
	},
}
