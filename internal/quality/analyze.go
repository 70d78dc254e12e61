package quality

import (
	"time"

	"resume-insights/internal/profile"
)

// Analyze scores every section of p independently. asOf is the reference date for
// certification expiry; a zero asOf skips that check so results stay reproducible.
// Template filler on a templated profile is scored as absent.
func Analyze(p profile.Profile, asOf time.Time) Analysis {
	p = p.WithoutTemplate()
	return Analysis{
		PersonalInfo:   analyzePersonalInfo(p.PersonalInfo),
		Summary:        analyzeSummary(p.Summary),
		Experience:     analyzeExperience(p.Experience),
		Education:      analyzeEducation(p.Education),
		Skills:         analyzeSkills(p.Skills),
		Projects:       analyzeProjects(p),
		Certifications: analyzeCertifications(p, asOf),
		Languages:      analyzeLanguages(p),
		Hobbies:        analyzeHobbies(p),
		Structure:      analyzeStructure(p),
	}
}
