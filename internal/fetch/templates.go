package fetch

import (
	"path/filepath"
	"strings"
)

// template pairs a path under the template repository with the local name.
type template struct {
	remote string
	local  string
}

// The remote repository stores NewEnum with an upper-case "Txt" extension;
// it is saved with the same lower-case suffix as its siblings.
var scriptTemplates = []template{
	{"CustomScriptsTemplate.cs", "CustomScriptsTemplate.cs"},
	{"Template/NewScript.cs.txt", "NewScript.cs.txt"},
	{"Template/NewEnum.cs.Txt", "NewEnum.cs.txt"},
	{"Template/NewScriptableObject.cs.txt", "NewScriptableObject.cs.txt"},
	{"Template/NewClass.cs.txt", "NewClass.cs.txt"},
}

// TemplateJobs returns the five template-script downloads, in order, writing
// into templateDir (Assets/Project/Editor/Template).
func TemplateJobs(baseURL, templateDir string) []Job {
	jobs := make([]Job, 0, len(scriptTemplates))
	for _, t := range scriptTemplates {
		jobs = append(jobs, Job{
			URL:  joinURL(baseURL, t.remote),
			Dest: filepath.Join(templateDir, t.local),
		})
	}
	return jobs
}

// GitignoreJob returns the single .gitignore download writing to dest.
func GitignoreJob(baseURL, dest string) Job {
	return Job{URL: joinURL(baseURL, ".gitignore"), Dest: dest}
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
