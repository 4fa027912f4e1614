package interfaces

import "strings"

// Persona identifies a reviewer specialization. Each persona biases the
// generated review toward a different area of expertise.
type Persona string

const (
	PersonaGeneralReviewer    Persona = "general_reviewer"
	PersonaSecurityAuditor    Persona = "security_auditor"
	PersonaPerformanceTuner   Persona = "performance_tuner"
	PersonaDataGuardian       Persona = "data_guardian"
	PersonaBusinessAnalyst    Persona = "business_analyst"
	PersonaArchitect          Persona = "architect"
	PersonaQualityCoach       Persona = "quality_coach"
	PersonaBackendSpecialist  Persona = "backend_specialist"
	PersonaFrontendSpecialist Persona = "frontend_specialist"
	PersonaDevOpsEngineer     Persona = "devops_engineer"
	PersonaDataScientist      Persona = "data_scientist"
)

// allPersonas lists every persona in declaration order. This order is the
// tie-break priority used by selection and the render order for score tables.
var allPersonas = []Persona{
	PersonaGeneralReviewer,
	PersonaSecurityAuditor,
	PersonaPerformanceTuner,
	PersonaDataGuardian,
	PersonaBusinessAnalyst,
	PersonaArchitect,
	PersonaQualityCoach,
	PersonaBackendSpecialist,
	PersonaFrontendSpecialist,
	PersonaDevOpsEngineer,
	PersonaDataScientist,
}

// AllPersonas returns every persona in declaration order.
// Callers must not mutate the returned slice.
func AllPersonas() []Persona {
	return allPersonas
}

// Valid reports whether p is a known persona.
func (p Persona) Valid() bool {
	_, ok := personaProfiles[p]
	return ok
}

// ParsePersona converts an identifier string into a Persona.
// Matching is case-insensitive. The second return value is false for
// unknown identifiers.
func ParsePersona(s string) (Persona, bool) {
	p := Persona(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, true
	}
	return "", false
}

// Profile carries the fixed descriptive text for a persona. All fields are
// compile-time constants, never derived at runtime.
type Profile struct {
	DisplayName string
	Description string
	Emoji       string
	Identity    string
	Interests   string
	Closing     string
}

// Profile returns the persona's display profile. Unknown personas fall back
// to the general reviewer profile so callers never need a nil check.
func (p Persona) Profile() Profile {
	if prof, ok := personaProfiles[p]; ok {
		return prof
	}
	return personaProfiles[PersonaGeneralReviewer]
}

var personaProfiles = map[Persona]Profile{
	PersonaGeneralReviewer: {
		DisplayName: "General Reviewer",
		Description: "Reviews overall code quality and basic improvements.",
		Emoji:       "🤖",
		Identity:    "You are an experienced all-round code reviewer.",
		Interests:   "You look at readability, naming, error handling, and small correctness issues that affect everyday maintenance.",
		Closing:     "Is there anything in this change that would surprise the next person reading it?",
	},
	PersonaSecurityAuditor: {
		DisplayName: "Security Auditor",
		Description: "Specializes in security vulnerabilities and risk factors.",
		Emoji:       "🔒",
		Identity:    "You are a security auditor reviewing this change for vulnerabilities.",
		Interests:   "You focus on authentication and authorization flows, input validation, secret handling, injection risks, and accidental data exposure.",
		Closing:     "Can untrusted input reach a sensitive operation without being checked?",
	},
	PersonaPerformanceTuner: {
		DisplayName: "Performance Tuner",
		Description: "Specializes in performance bottlenecks and optimization points.",
		Emoji:       "⚡",
		Identity:    "You are a performance engineer reviewing this change for efficiency.",
		Interests:   "You focus on query patterns, memory allocation, caching opportunities, nested iteration, and anything that degrades latency or throughput under load.",
		Closing:     "How does this change behave when the data volume grows a hundredfold?",
	},
	PersonaDataGuardian: {
		DisplayName: "Data Guardian",
		Description: "Specializes in database queries and data integrity.",
		Emoji:       "🗃️",
		Identity:    "You are a database specialist reviewing this change for data safety.",
		Interests:   "You focus on query correctness, transaction boundaries, index usage, migration safety, and constraints that protect data integrity.",
		Closing:     "Can this change corrupt or lose data if it runs twice or fails halfway?",
	},
	PersonaBusinessAnalyst: {
		DisplayName: "Business Analyst",
		Description: "Specializes in business logic and domain rule implementation.",
		Emoji:       "💼",
		Identity:    "You are a domain expert reviewing this change for business correctness.",
		Interests:   "You focus on whether the implemented rules match the intended requirements, on unhandled business edge cases, and on validation of domain constraints.",
		Closing:     "Does the implementation still match the requirement when inputs hit a boundary case?",
	},
	PersonaArchitect: {
		DisplayName: "Architect",
		Description: "Specializes in architectural design and module structure.",
		Emoji:       "🏗️",
		Identity:    "You are a software architect reviewing this change for structural soundness.",
		Interests:   "You focus on layer boundaries, dependency direction, module responsibilities, and abstractions that will either carry or hinder future change.",
		Closing:     "Will this structure still make sense after the next three features land on top of it?",
	},
	PersonaQualityCoach: {
		DisplayName: "Quality Coach",
		Description: "Specializes in test strategy and code readability.",
		Emoji:       "✅",
		Identity:    "You are a quality coach reviewing this change for testability and clarity.",
		Interests:   "You focus on test coverage of the changed behavior, readable naming, consistent conventions, and code that is easy to verify.",
		Closing:     "Which part of this change would break silently if its tests were missing?",
	},
	PersonaBackendSpecialist: {
		DisplayName: "Backend Specialist",
		Description: "Specializes in server-side frameworks and API implementation.",
		Emoji:       "⚙️",
		Identity:    "You are a backend engineer reviewing this server-side change.",
		Interests:   "You focus on API contracts, request validation, service and repository layering, error propagation, and framework usage on the server.",
		Closing:     "What happens to this endpoint when a dependency times out or returns garbage?",
	},
	PersonaFrontendSpecialist: {
		DisplayName: "Frontend Specialist",
		Description: "Specializes in UI components and client-side state management.",
		Emoji:       "🎨",
		Identity:    "You are a frontend engineer reviewing this client-side change.",
		Interests:   "You focus on component structure, state and effect handling, rendering cost, accessibility, and consistent styling.",
		Closing:     "Does this component behave correctly when it re-renders with stale or missing data?",
	},
	PersonaDevOpsEngineer: {
		DisplayName: "DevOps Engineer",
		Description: "Specializes in build pipelines, deployment, and infrastructure.",
		Emoji:       "🚀",
		Identity:    "You are a DevOps engineer reviewing this infrastructure change.",
		Interests:   "You focus on build and deploy pipelines, container configuration, environment variables, monitoring hooks, and rollback safety.",
		Closing:     "If this deploy goes wrong at 3am, how quickly can it be rolled back?",
	},
	PersonaDataScientist: {
		DisplayName: "Data Scientist",
		Description: "Specializes in data processing and machine learning code.",
		Emoji:       "📊",
		Identity:    "You are a data scientist reviewing this data-processing change.",
		Interests:   "You focus on data transformations, feature handling, model training and evaluation code, and numerical correctness.",
		Closing:     "Would this pipeline still produce valid results if the input data had nulls or outliers?",
	},
}
