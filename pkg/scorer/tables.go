package scorer

import "github.com/Int-Type/gitlab-mr-auto-review/pkg/interfaces"

// DefaultTable returns the built-in weight table. The rules cover the common
// layers of a web stack (backend, frontend, data, infra) plus generic
// quality signals, and carry the default thresholds.
func DefaultTable() *WeightTable {
	return &WeightTable{
		PathWeights:        defaultPathWeights(),
		ExtensionWeights:   defaultExtensionWeights(),
		KeywordWeights:     defaultKeywordWeights(),
		ComplexityWeights:  defaultComplexityWeights(),
		KeywordSets:        defaultKeywordSets(),
		SelectionThreshold: DefaultSelectionThreshold,
		MentionThreshold:   DefaultMentionThreshold,
	}
}

// defaultPathWeights maps path substrings to persona weights.
func defaultPathWeights() map[string]PersonaWeights {
	return map[string]PersonaWeights{
		// Backend layers
		"controller": {
			interfaces.PersonaBackendSpecialist: 40,
			interfaces.PersonaSecurityAuditor:   35,
			interfaces.PersonaBusinessAnalyst:   25,
		},
		"service": {
			interfaces.PersonaBackendSpecialist: 40,
			interfaces.PersonaBusinessAnalyst:   35,
			interfaces.PersonaArchitect:         20,
		},
		"repository": {
			interfaces.PersonaDataGuardian:      40,
			interfaces.PersonaBackendSpecialist: 30,
			interfaces.PersonaPerformanceTuner:  25,
		},
		"entity": {
			interfaces.PersonaDataGuardian:      35,
			interfaces.PersonaBackendSpecialist: 30,
			interfaces.PersonaArchitect:         25,
		},
		"config": {
			interfaces.PersonaDevOpsEngineer:    35,
			interfaces.PersonaSecurityAuditor:   30,
			interfaces.PersonaBackendSpecialist: 25,
		},
		"api": {
			interfaces.PersonaBackendSpecialist: 40,
			interfaces.PersonaArchitect:         30,
			interfaces.PersonaSecurityAuditor:   25,
		},

		// Frontend
		"component": {
			interfaces.PersonaFrontendSpecialist: 40,
			interfaces.PersonaQualityCoach:       25,
			interfaces.PersonaArchitect:          20,
		},
		"page": {
			interfaces.PersonaFrontendSpecialist: 40,
			interfaces.PersonaBusinessAnalyst:    25,
		},
		"hook": {
			interfaces.PersonaFrontendSpecialist: 40,
			interfaces.PersonaPerformanceTuner:   25,
		},
		"style": {
			interfaces.PersonaFrontendSpecialist: 40,
			interfaces.PersonaQualityCoach:       20,
		},

		// Data science
		"model": {
			interfaces.PersonaDataScientist:    40,
			interfaces.PersonaPerformanceTuner: 25,
			interfaces.PersonaArchitect:        20,
		},
		"data": {
			interfaces.PersonaDataScientist:    35,
			interfaces.PersonaDataGuardian:     30,
			interfaces.PersonaPerformanceTuner: 25,
		},
		"analysis": {
			interfaces.PersonaDataScientist:   40,
			interfaces.PersonaBusinessAnalyst: 25,
		},
		"recommendation": {
			interfaces.PersonaDataScientist:   40,
			interfaces.PersonaBusinessAnalyst: 30,
		},

		// Infra
		"docker": {
			interfaces.PersonaDevOpsEngineer:   40,
			interfaces.PersonaSecurityAuditor:  25,
			interfaces.PersonaPerformanceTuner: 20,
		},
		"k8s": {
			interfaces.PersonaDevOpsEngineer:  40,
			interfaces.PersonaArchitect:       25,
			interfaces.PersonaSecurityAuditor: 20,
		},
		"pipeline": {
			interfaces.PersonaDevOpsEngineer: 40,
			interfaces.PersonaQualityCoach:   25,
		},
		"monitoring": {
			interfaces.PersonaDevOpsEngineer:   40,
			interfaces.PersonaPerformanceTuner: 30,
		},

		// Tests
		"test": {
			interfaces.PersonaQualityCoach:       40,
			interfaces.PersonaBackendSpecialist:  20,
			interfaces.PersonaFrontendSpecialist: 20,
		},
	}
}

// defaultKeywordWeights maps patch-content keywords to persona weights.
func defaultKeywordWeights() map[string]PersonaWeights {
	return map[string]PersonaWeights{
		// Security
		"@PreAuthorize":  {interfaces.PersonaSecurityAuditor: 30},
		"@Secured":       {interfaces.PersonaSecurityAuditor: 30},
		"password":       {interfaces.PersonaSecurityAuditor: 25},
		"token":          {interfaces.PersonaSecurityAuditor: 25},
		"authentication": {interfaces.PersonaSecurityAuditor: 25},
		"authorization":  {interfaces.PersonaSecurityAuditor: 25},
		"jwt":            {interfaces.PersonaSecurityAuditor: 25},
		"oauth":          {interfaces.PersonaSecurityAuditor: 25},
		"encrypt":        {interfaces.PersonaSecurityAuditor: 25},
		"decrypt":        {interfaces.PersonaSecurityAuditor: 25},
		"hash":           {interfaces.PersonaSecurityAuditor: 25},
		"csrf":           {interfaces.PersonaSecurityAuditor: 25},
		"xss":            {interfaces.PersonaSecurityAuditor: 25},

		// Database
		"@Query":         {interfaces.PersonaDataGuardian: 30, interfaces.PersonaPerformanceTuner: 20},
		"@Transactional": {interfaces.PersonaDataGuardian: 25, interfaces.PersonaArchitect: 15},
		"SELECT":         {interfaces.PersonaDataGuardian: 25, interfaces.PersonaPerformanceTuner: 20},
		"INSERT":         {interfaces.PersonaDataGuardian: 25},
		"UPDATE":         {interfaces.PersonaDataGuardian: 25},
		"DELETE":         {interfaces.PersonaDataGuardian: 25},
		"JOIN":           {interfaces.PersonaPerformanceTuner: 25, interfaces.PersonaDataGuardian: 20},
		"INDEX":          {interfaces.PersonaDataGuardian: 25, interfaces.PersonaPerformanceTuner: 20},
		"postgresql":     {interfaces.PersonaDataGuardian: 25},
		"redis":          {interfaces.PersonaDataGuardian: 25, interfaces.PersonaPerformanceTuner: 20},
		"weaviate":       {interfaces.PersonaDataScientist: 30, interfaces.PersonaDataGuardian: 20},

		// Performance
		"@Cacheable":        {interfaces.PersonaPerformanceTuner: 30},
		"@Async":            {interfaces.PersonaPerformanceTuner: 25, interfaces.PersonaArchitect: 15},
		"CompletableFuture": {interfaces.PersonaPerformanceTuner: 25},
		"Parallel":          {interfaces.PersonaPerformanceTuner: 25},
		"Stream":            {interfaces.PersonaPerformanceTuner: 20},
		"cache":             {interfaces.PersonaPerformanceTuner: 25},
		"optimization":      {interfaces.PersonaPerformanceTuner: 25},
		"latency":           {interfaces.PersonaPerformanceTuner: 25},
		"throughput":        {interfaces.PersonaPerformanceTuner: 25},

		// Backend (Spring)
		"@RestController":   {interfaces.PersonaBackendSpecialist: 30},
		"@Service":          {interfaces.PersonaBackendSpecialist: 25, interfaces.PersonaArchitect: 15},
		"@Repository":       {interfaces.PersonaBackendSpecialist: 25, interfaces.PersonaDataGuardian: 15},
		"@Component":        {interfaces.PersonaBackendSpecialist: 20, interfaces.PersonaArchitect: 15},
		"@Autowired":        {interfaces.PersonaBackendSpecialist: 20},
		"@RequestMapping":   {interfaces.PersonaBackendSpecialist: 25},
		"@GetMapping":       {interfaces.PersonaBackendSpecialist: 25},
		"@PostMapping":      {interfaces.PersonaBackendSpecialist: 25},
		"SpringApplication": {interfaces.PersonaBackendSpecialist: 25},

		// Backend (FastAPI)
		"FastAPI":  {interfaces.PersonaBackendSpecialist: 30, interfaces.PersonaDataScientist: 20},
		"pydantic": {interfaces.PersonaBackendSpecialist: 25, interfaces.PersonaDataScientist: 20},
		"uvicorn":  {interfaces.PersonaBackendSpecialist: 20},

		// Frontend (React)
		"useState":   {interfaces.PersonaFrontendSpecialist: 30},
		"useEffect":  {interfaces.PersonaFrontendSpecialist: 30},
		"useContext": {interfaces.PersonaFrontendSpecialist: 25},
		"useReducer": {interfaces.PersonaFrontendSpecialist: 25},
		"component":  {interfaces.PersonaFrontendSpecialist: 25},
		"props":      {interfaces.PersonaFrontendSpecialist: 25},
		"state":      {interfaces.PersonaFrontendSpecialist: 20},
		"jsx":        {interfaces.PersonaFrontendSpecialist: 25},
		"tsx":        {interfaces.PersonaFrontendSpecialist: 25},

		// Frontend (JS/TS)
		"typescript": {interfaces.PersonaFrontendSpecialist: 25},
		"interface":  {interfaces.PersonaFrontendSpecialist: 20, interfaces.PersonaArchitect: 15},
		"type":       {interfaces.PersonaFrontendSpecialist: 20},

		// Frontend (styling)
		"styled-components": {interfaces.PersonaFrontendSpecialist: 25},
		"css":               {interfaces.PersonaFrontendSpecialist: 20},
		"scss":              {interfaces.PersonaFrontendSpecialist: 20},
		"tailwind":          {interfaces.PersonaFrontendSpecialist: 20},

		// Data science (ML)
		"sklearn":    {interfaces.PersonaDataScientist: 30},
		"tensorflow": {interfaces.PersonaDataScientist: 30},
		"pytorch":    {interfaces.PersonaDataScientist: 30},
		"keras":      {interfaces.PersonaDataScientist: 30},
		"model":      {interfaces.PersonaDataScientist: 25},
		"predict":    {interfaces.PersonaDataScientist: 25},
		"train":      {interfaces.PersonaDataScientist: 25},
		"fit":        {interfaces.PersonaDataScientist: 25},

		// Data science (processing)
		"pandas":        {interfaces.PersonaDataScientist: 30},
		"numpy":         {interfaces.PersonaDataScientist: 30},
		"dataframe":     {interfaces.PersonaDataScientist: 25},
		"array":         {interfaces.PersonaDataScientist: 20},
		"preprocessing": {interfaces.PersonaDataScientist: 25},
		"feature":       {interfaces.PersonaDataScientist: 25},

		// Data science (recommendation)
		"recommendation": {interfaces.PersonaDataScientist: 30, interfaces.PersonaBusinessAnalyst: 20},
		"collaborative":  {interfaces.PersonaDataScientist: 25},
		"content-based":  {interfaces.PersonaDataScientist: 25},
		"embedding":      {interfaces.PersonaDataScientist: 25},
		"similarity":     {interfaces.PersonaDataScientist: 25},

		// DevOps (Docker)
		"FROM":           {interfaces.PersonaDevOpsEngineer: 30},
		"RUN":            {interfaces.PersonaDevOpsEngineer: 25},
		"COPY":           {interfaces.PersonaDevOpsEngineer: 25},
		"ENV":            {interfaces.PersonaDevOpsEngineer: 25},
		"EXPOSE":         {interfaces.PersonaDevOpsEngineer: 25},
		"docker":         {interfaces.PersonaDevOpsEngineer: 30},
		"dockerfile":     {interfaces.PersonaDevOpsEngineer: 30},
		"docker-compose": {interfaces.PersonaDevOpsEngineer: 30},

		// DevOps (Kubernetes)
		"kubernetes": {interfaces.PersonaDevOpsEngineer: 30},
		"kubectl":    {interfaces.PersonaDevOpsEngineer: 25},
		"deployment": {interfaces.PersonaDevOpsEngineer: 25},
		"ingress":    {interfaces.PersonaDevOpsEngineer: 25},
		"namespace":  {interfaces.PersonaDevOpsEngineer: 25},

		// DevOps (CI/CD)
		"jenkins":        {interfaces.PersonaDevOpsEngineer: 30},
		"pipeline":       {interfaces.PersonaDevOpsEngineer: 30},
		"build":          {interfaces.PersonaDevOpsEngineer: 20},
		"deploy":         {interfaces.PersonaDevOpsEngineer: 25},
		"github-actions": {interfaces.PersonaDevOpsEngineer: 25},

		// DevOps (monitoring)
		"prometheus": {interfaces.PersonaDevOpsEngineer: 30},
		"grafana":    {interfaces.PersonaDevOpsEngineer: 30},
		"loki":       {interfaces.PersonaDevOpsEngineer: 25},
		"promtail":   {interfaces.PersonaDevOpsEngineer: 25},
		"metrics":    {interfaces.PersonaDevOpsEngineer: 25, interfaces.PersonaPerformanceTuner: 20},
		"logging":    {interfaces.PersonaDevOpsEngineer: 25},

		// DevOps (nginx)
		"nginx":      {interfaces.PersonaDevOpsEngineer: 30},
		"proxy_pass": {interfaces.PersonaDevOpsEngineer: 25},
		"upstream":   {interfaces.PersonaDevOpsEngineer: 25},
		"location":   {interfaces.PersonaDevOpsEngineer: 20},

		// Architecture
		"abstract":     {interfaces.PersonaArchitect: 25},
		"pattern":      {interfaces.PersonaArchitect: 25},
		"design":       {interfaces.PersonaArchitect: 20},
		"architecture": {interfaces.PersonaArchitect: 30},
		"dependency":   {interfaces.PersonaArchitect: 25},
		"injection":    {interfaces.PersonaArchitect: 25},

		// Business logic
		"validate":  {interfaces.PersonaBusinessAnalyst: 25},
		"calculate": {interfaces.PersonaBusinessAnalyst: 25},
		"process":   {interfaces.PersonaBusinessAnalyst: 20},
		"business":  {interfaces.PersonaBusinessAnalyst: 20},
		"workflow":  {interfaces.PersonaBusinessAnalyst: 25},
		"rule":      {interfaces.PersonaBusinessAnalyst: 25},

		// Tests
		"@Test":  {interfaces.PersonaQualityCoach: 30},
		"@Mock":  {interfaces.PersonaQualityCoach: 25},
		"assert": {interfaces.PersonaQualityCoach: 25},
		"verify": {interfaces.PersonaQualityCoach: 25},
		"expect": {interfaces.PersonaQualityCoach: 25},
		"jest":   {interfaces.PersonaQualityCoach: 25, interfaces.PersonaFrontendSpecialist: 20},
		"junit":  {interfaces.PersonaQualityCoach: 25, interfaces.PersonaBackendSpecialist: 15},
		"pytest": {interfaces.PersonaQualityCoach: 25, interfaces.PersonaDataScientist: 15},
	}
}

// defaultExtensionWeights maps path suffixes to persona weights.
func defaultExtensionWeights() map[string]PersonaWeights {
	return map[string]PersonaWeights{
		// Backend
		".java": {
			interfaces.PersonaBackendSpecialist: 25,
			interfaces.PersonaQualityCoach:      15,
			interfaces.PersonaArchitect:         10,
		},
		".py": {
			interfaces.PersonaDataScientist:     30,
			interfaces.PersonaBackendSpecialist: 20,
			interfaces.PersonaQualityCoach:      15,
		},
		".sql": {
			interfaces.PersonaDataGuardian:      30,
			interfaces.PersonaPerformanceTuner:  20,
			interfaces.PersonaBackendSpecialist: 15,
		},

		// Frontend
		".js": {
			interfaces.PersonaFrontendSpecialist: 30,
			interfaces.PersonaQualityCoach:       15,
			interfaces.PersonaPerformanceTuner:   10,
		},
		".jsx": {
			interfaces.PersonaFrontendSpecialist: 35,
			interfaces.PersonaQualityCoach:       15,
		},
		".ts": {
			interfaces.PersonaFrontendSpecialist: 30,
			interfaces.PersonaQualityCoach:       20,
			interfaces.PersonaArchitect:          15,
		},
		".tsx": {
			interfaces.PersonaFrontendSpecialist: 35,
			interfaces.PersonaQualityCoach:       20,
		},
		".vue": {
			interfaces.PersonaFrontendSpecialist: 35,
			interfaces.PersonaQualityCoach:       15,
		},
		".html": {
			interfaces.PersonaFrontendSpecialist: 30,
			interfaces.PersonaQualityCoach:       10,
		},
		".css": {
			interfaces.PersonaFrontendSpecialist: 25,
			interfaces.PersonaQualityCoach:       10,
		},
		".scss": {
			interfaces.PersonaFrontendSpecialist: 25,
			interfaces.PersonaQualityCoach:       10,
		},
		".sass": {
			interfaces.PersonaFrontendSpecialist: 25,
			interfaces.PersonaQualityCoach:       10,
		},

		// Infra
		".dockerfile": {
			interfaces.PersonaDevOpsEngineer:   40,
			interfaces.PersonaSecurityAuditor:  20,
			interfaces.PersonaPerformanceTuner: 15,
		},
		".yml": {
			interfaces.PersonaDevOpsEngineer:  30,
			interfaces.PersonaSecurityAuditor: 20,
			interfaces.PersonaArchitect:       15,
		},
		".yaml": {
			interfaces.PersonaDevOpsEngineer:  30,
			interfaces.PersonaSecurityAuditor: 20,
			interfaces.PersonaArchitect:       15,
		},
		".tf": {
			interfaces.PersonaDevOpsEngineer:  35,
			interfaces.PersonaSecurityAuditor: 25,
			interfaces.PersonaArchitect:       15,
		},
		".sh": {
			interfaces.PersonaDevOpsEngineer:  30,
			interfaces.PersonaSecurityAuditor: 20,
		},
		".conf": {
			interfaces.PersonaDevOpsEngineer:   25,
			interfaces.PersonaSecurityAuditor:  20,
			interfaces.PersonaPerformanceTuner: 15,
		},

		// Config formats
		".properties": {
			interfaces.PersonaBackendSpecialist: 20,
			interfaces.PersonaSecurityAuditor:   20,
			interfaces.PersonaDevOpsEngineer:    15,
		},
		".json": {
			interfaces.PersonaFrontendSpecialist: 20,
			interfaces.PersonaBackendSpecialist:  15,
			interfaces.PersonaDevOpsEngineer:     15,
		},
		".xml": {
			interfaces.PersonaBackendSpecialist: 20,
			interfaces.PersonaDevOpsEngineer:    15,
		},

		// Data science
		".ipynb": {
			interfaces.PersonaDataScientist: 40,
			interfaces.PersonaQualityCoach:  15,
		},
		".pkl": {
			interfaces.PersonaDataScientist:    35,
			interfaces.PersonaPerformanceTuner: 15,
		},
		".csv": {
			interfaces.PersonaDataScientist: 25,
			interfaces.PersonaDataGuardian:  20,
		},
		".parquet": {
			interfaces.PersonaDataScientist:    30,
			interfaces.PersonaPerformanceTuner: 25,
		},

		// Build and package files
		".gradle": {
			interfaces.PersonaBackendSpecialist: 25,
			interfaces.PersonaDevOpsEngineer:    20,
			interfaces.PersonaArchitect:         15,
		},
		"package.json": {
			interfaces.PersonaFrontendSpecialist: 30,
			interfaces.PersonaDevOpsEngineer:     20,
		},
		"requirements.txt": {
			interfaces.PersonaDataScientist:     30,
			interfaces.PersonaBackendSpecialist: 20,
			interfaces.PersonaDevOpsEngineer:    15,
		},
		"poetry.lock": {
			interfaces.PersonaDataScientist:     25,
			interfaces.PersonaBackendSpecialist: 20,
		},
	}
}

// defaultComplexityWeights maps regex patterns over the raw patch text to
// persona weights. Patterns match case-insensitively across line breaks.
func defaultComplexityWeights() map[string]PersonaWeights {
	return map[string]PersonaWeights{
		// Branch-heavy logic
		"if.*else.*if": {
			interfaces.PersonaBusinessAnalyst:   15,
			interfaces.PersonaQualityCoach:      10,
			interfaces.PersonaBackendSpecialist: 10,
		},
		"switch.*case": {
			interfaces.PersonaBusinessAnalyst:   15,
			interfaces.PersonaQualityCoach:      10,
			interfaces.PersonaBackendSpecialist: 10,
		},

		// Nested loops
		"for.*for": {
			interfaces.PersonaPerformanceTuner: 15,
			interfaces.PersonaQualityCoach:     10,
			interfaces.PersonaDataScientist:    10,
		},
		"while.*while": {
			interfaces.PersonaPerformanceTuner: 15,
			interfaces.PersonaQualityCoach:     10,
		},

		// Exception handling
		"try.*catch": {
			interfaces.PersonaArchitect:         15,
			interfaces.PersonaQualityCoach:      10,
			interfaces.PersonaBackendSpecialist: 10,
		},
		"throw.*Exception": {
			interfaces.PersonaArchitect:         15,
			interfaces.PersonaBackendSpecialist: 10,
		},

		// Async flow
		"async.*await": {
			interfaces.PersonaPerformanceTuner:   15,
			interfaces.PersonaFrontendSpecialist: 12,
			interfaces.PersonaBackendSpecialist:  10,
		},

		// Multi-join queries
		"JOIN.*JOIN": {
			interfaces.PersonaDataGuardian:     15,
			interfaces.PersonaPerformanceTuner: 12,
		},

		// React state wiring
		"useState.*useEffect": {
			interfaces.PersonaFrontendSpecialist: 15,
			interfaces.PersonaQualityCoach:       10,
		},
	}
}

// defaultKeywordSets maps each persona to its domain vocabulary. Members are
// lower-case; matching happens against lower-cased patch tokens.
func defaultKeywordSets() map[interfaces.Persona][]string {
	return map[interfaces.Persona][]string{
		interfaces.PersonaSecurityAuditor: {
			"password", "token", "secret", "key", "auth", "login", "session",
			"encrypt", "decrypt", "hash", "salt", "jwt", "oauth", "security",
			"csrf", "xss", "cors", "ssl", "tls", "certificate", "firewall",
		},
		interfaces.PersonaPerformanceTuner: {
			"cache", "async", "parallel", "concurrent", "thread", "pool",
			"optimization", "performance", "memory", "cpu", "latency",
			"throughput", "scalability", "bottleneck", "profiling", "benchmark",
		},
		interfaces.PersonaDataGuardian: {
			"sql", "query", "database", "table", "index", "transaction",
			"commit", "rollback", "lock", "constraint", "foreign", "primary",
			"postgresql", "redis", "mongodb", "elasticsearch", "weaviate",
		},
		interfaces.PersonaFrontendSpecialist: {
			"react", "vue", "angular", "javascript", "typescript", "html", "css",
			"component", "props", "state", "hook", "dom", "event", "render",
			"jsx", "tsx", "scss", "sass", "webpack", "vite", "babel",
		},
		interfaces.PersonaBackendSpecialist: {
			"spring", "boot", "java", "python", "fastapi", "api", "rest",
			"controller", "service", "repository", "entity", "dto", "model",
			"endpoint", "request", "response", "middleware", "filter",
		},
		interfaces.PersonaDevOpsEngineer: {
			"docker", "kubernetes", "jenkins", "nginx", "prometheus", "grafana",
			"deployment", "pipeline", "ci", "cd", "monitoring", "logging",
			"infrastructure", "terraform", "ansible", "helm", "istio",
		},
		interfaces.PersonaDataScientist: {
			"pandas", "numpy", "sklearn", "tensorflow", "pytorch", "keras",
			"model", "training", "prediction", "feature", "dataset", "ml",
			"ai", "recommendation", "embedding", "vector", "similarity",
			"clustering", "classification", "regression", "deep", "learning",
		},
	}
}
