package filter

// keywordCluster pairs a facet value with the query keywords that imply it.
// Clusters are held in slices, not maps, so inference ties break by
// enumeration order deterministically.
type keywordCluster struct {
	name     string
	keywords []string
}

// domainClusters map legal domains to their trigger keywords.
var domainClusters = []keywordCluster{
	{"criminal", []string{"ipc", "crpc", "criminal", "punishment", "offense", "crime", "police", "arrest", "bail", "sentence"}},
	{"civil", []string{"civil", "cpc", "contract", "property", "tort", "damages", "suit", "plaintiff", "defendant"}},
	{"constitutional", []string{"constitution", "fundamental rights", "article", "supreme court", "high court", "writ", "petition"}},
	{"family", []string{"marriage", "divorce", "adoption", "guardianship", "maintenance", "hindu marriage act", "family court"}},
	{"labor", []string{"employment", "termination", "wage", "industrial dispute", "trade union", "labor law", "workman"}},
	{"tax", []string{"income tax", "gst", "customs", "excise", "assessment", "taxation", "revenue"}},
	{"property", []string{"land", "building", "lease", "mortgage", "easement", "transfer of property act"}},
	{"corporate", []string{"company", "director", "shareholder", "incorporation", "companies act", "partnership"}},
	{"environmental", []string{"environment", "pollution", "forest", "wildlife", "ecological", "sustainable"}},
	{"intellectual_property", []string{"patent", "trademark", "copyright", "design", "geographical indication"}},
	{"cyber", []string{"cyber crime", "it act", "hacking", "data theft", "digital signature", "electronic record"}},
	{"consumer", []string{"consumer protection", "defect", "complaint", "unfair trade", "consumer court"}},
	{"arbitration", []string{"arbitration", "conciliation", "mediation", "alternative dispute resolution"}},
	{"banking", []string{"banking", "negotiable instruments", "cheque", "promissory note", "banking regulation"}},
	{"insurance", []string{"insurance", "insurer", "insured", "premium", "claim", "marine insurance"}},
}

// jurisdictionClusters map jurisdictions to state and city names.
var jurisdictionClusters = []keywordCluster{
	{"delhi", []string{"delhi", "national capital territory"}},
	{"maharashtra", []string{"maharashtra", "mumbai", "pune", "nagpur"}},
	{"karnataka", []string{"karnataka", "bangalore", "bengaluru", "mysore"}},
	{"tamil_nadu", []string{"tamil nadu", "chennai", "madras", "coimbatore"}},
	{"gujarat", []string{"gujarat", "ahmedabad", "surat", "vadodara"}},
	{"rajasthan", []string{"rajasthan", "jaipur", "jodhpur", "udaipur"}},
	{"punjab", []string{"punjab", "chandigarh", "amritsar", "ludhiana"}},
	{"haryana", []string{"haryana", "gurgaon", "faridabad", "panipat"}},
	{"uttar_pradesh", []string{"uttar pradesh", "lucknow", "kanpur", "allahabad"}},
	{"bihar", []string{"bihar", "patna", "gaya", "bhagalpur"}},
	{"west_bengal", []string{"west bengal", "kolkata", "calcutta", "howrah"}},
	{"odisha", []string{"odisha", "bhubaneswar", "cuttack", "puri"}},
	{"andhra_pradesh", []string{"andhra pradesh", "hyderabad", "visakhapatnam", "vijayawada"}},
	{"telangana", []string{"telangana", "hyderabad", "warangal", "karimnagar"}},
	{"kerala", []string{"kerala", "kochi", "thiruvananthapuram", "calicut"}},
	{"madhya_pradesh", []string{"madhya pradesh", "bhopal", "indore", "jabalpur"}},
	{"chhattisgarh", []string{"chhattisgarh", "raipur", "bilaspur", "durg"}},
	{"jharkhand", []string{"jharkhand", "ranchi", "jamshedpur", "dhanbad"}},
	{"assam", []string{"assam", "guwahati", "dibrugarh", "silchar"}},
	{"meghalaya", []string{"meghalaya", "shillong", "tura", "jowai"}},
	{"tripura", []string{"tripura", "agartala", "udaipur", "dharmanagar"}},
	{"mizoram", []string{"mizoram", "aizawl", "lunglei", "saiha"}},
	{"manipur", []string{"manipur", "imphal", "bishnupur", "thoubal"}},
	{"nagaland", []string{"nagaland", "kohima", "dimapur", "mokokchung"}},
	{"arunachal_pradesh", []string{"arunachal pradesh", "itanagar", "naharlagun", "pasighat"}},
	{"sikkim", []string{"sikkim", "gangtok", "namchi", "geyzing"}},
	{"goa", []string{"goa", "panaji", "margoa", "ponda"}},
	{"himachal_pradesh", []string{"himachal pradesh", "shimla", "dharamshala", "solan"}},
	{"uttarakhand", []string{"uttarakhand", "dehradun", "haridwar", "rishikesh"}},
	{"central", []string{"central", "union", "parliament", "president", "supreme court"}},
}

// courtClusters map court types to how they are mentioned in queries.
var courtClusters = []keywordCluster{
	{"supreme_court", []string{"supreme court", "apex court", "highest court"}},
	{"high_court", []string{"high court", "hc", "highcourt"}},
	{"district_court", []string{"district court", "civil court", "criminal court", "sessions court"}},
	{"tribunal", []string{"tribunal", "national company law tribunal", "debt recovery tribunal"}},
	{"consumer_court", []string{"consumer court", "consumer disputes redressal commission"}},
	{"family_court", []string{"family court", "matrimonial court"}},
	{"labor_court", []string{"labor court", "industrial tribunal"}},
}

// actClusters map canonical act names to their aliases.
var actClusters = []keywordCluster{
	{"indian penal code", []string{"ipc", "indian penal code"}},
	{"criminal procedure code", []string{"crpc", "criminal procedure code", "code of criminal procedure"}},
	{"civil procedure code", []string{"cpc", "civil procedure code", "code of civil procedure"}},
	{"indian evidence act", []string{"indian evidence act", "evidence act"}},
	{"indian contract act", []string{"indian contract act", "contract act"}},
	{"hindu marriage act", []string{"hindu marriage act", "hma"}},
	{"motor vehicles act", []string{"motor vehicles act", "mva"}},
	{"consumer protection act", []string{"consumer protection act", "copra"}},
	{"companies act", []string{"companies act", "company law"}},
	{"income tax act", []string{"income tax act", "income-tax act"}},
	{"transfer of property act", []string{"transfer of property act", "property act"}},
}

// Per-kind boost weights applied when an inferred filter matches a document.
const (
	domainBoost       = 2.0
	jurisdictionBoost = 1.5
	courtBoost        = 1.8
	yearRangeBoost    = 1.3
	sectionBoost      = 3.0
	actNameBoost      = 2.5
)
