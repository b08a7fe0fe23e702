package insights

// TechProfile describes how a language relates to the wider ecosystem.
type TechProfile struct {
	Related       []string
	Advanced      []string
	Complementary []string
	Roles         []string
}

// TechStack is keyed by the language name as reported by GitHub.
var TechStack = map[string]TechProfile{
	"JavaScript": {
		Related:       []string{"TypeScript", "Node.js", "React", "Vue", "Angular"},
		Advanced:      []string{"TypeScript", "WebAssembly", "Deno"},
		Complementary: []string{"CSS", "HTML", "Python"},
		Roles:         []string{"Frontend Developer", "Full Stack Developer", "Node.js Developer"},
	},
	"Python": {
		Related:       []string{"Django", "Flask", "FastAPI", "NumPy", "Pandas"},
		Advanced:      []string{"Machine Learning", "Data Science", "AI", "Deep Learning"},
		Complementary: []string{"SQL", "R", "Julia", "Go"},
		Roles:         []string{"Backend Developer", "Data Scientist", "ML Engineer", "DevOps Engineer"},
	},
	"Java": {
		Related:       []string{"Spring", "Kotlin", "Scala", "Maven", "Gradle"},
		Advanced:      []string{"Microservices", "Cloud Architecture", "Reactive Programming"},
		Complementary: []string{"SQL", "Python", "Go"},
		Roles:         []string{"Backend Developer", "Enterprise Developer", "Android Developer"},
	},
	"TypeScript": {
		Related:       []string{"JavaScript", "React", "Angular", "Node.js"},
		Advanced:      []string{"Decorators", "Generics", "Type Systems"},
		Complementary: []string{"GraphQL", "Rust", "Go"},
		Roles:         []string{"Senior Frontend Developer", "Full Stack Developer"},
	},
	"Go": {
		Related:       []string{"Docker", "Kubernetes", "gRPC"},
		Advanced:      []string{"Distributed Systems", "Cloud Native", "Microservices"},
		Complementary: []string{"Rust", "Python", "C++"},
		Roles:         []string{"Backend Developer", "Cloud Engineer", "DevOps Engineer"},
	},
	"Rust": {
		Related:       []string{"WebAssembly", "Systems Programming"},
		Advanced:      []string{"Operating Systems", "Embedded Systems", "Blockchain"},
		Complementary: []string{"C++", "Go", "Python"},
		Roles:         []string{"Systems Programmer", "Blockchain Developer", "Security Engineer"},
	},
	"Swift": {
		Related:       []string{"iOS", "macOS", "Objective-C"},
		Advanced:      []string{"SwiftUI", "Combine", "Metal"},
		Complementary: []string{"Kotlin", "React Native", "Flutter"},
		Roles:         []string{"iOS Developer", "Mobile Developer", "Apple Platform Developer"},
	},
	"Kotlin": {
		Related:       []string{"Android", "Java", "Spring"},
		Advanced:      []string{"Coroutines", "Multiplatform", "Native"},
		Complementary: []string{"Swift", "Flutter", "React Native"},
		Roles:         []string{"Android Developer", "Mobile Developer", "Backend Developer"},
	},
}

// Market demand tiers. Order matters: the first absent hot technology is
// the one recommended.
var (
	HotTech      = []string{"TypeScript", "Python", "Go", "Rust", "Kubernetes", "React", "Machine Learning"}
	GrowingTech  = []string{"Flutter", "Svelte", "Deno", "WebAssembly", "GraphQL", "Terraform"}
	StableTech   = []string{"Java", "JavaScript", "C#", "SQL", "Docker", "AWS"}
	EmergingTech = []string{"Bun", "Astro", "Qwik", "Tauri", "WASM"}
)

const (
	hotPoints      = 25
	growingPoints  = 15
	stablePoints   = 10
	emergingPoints = 20
)

var (
	backendLanguages  = []string{"Python", "Java", "Go", "Ruby", "PHP", "C#"}
	frontendLanguages = []string{"JavaScript", "TypeScript", "HTML", "CSS"}
)
