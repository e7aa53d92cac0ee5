package controller

import "strings"

// Messages holds the user-facing strings for one language. The tool ships to
// the bird-chinese-community, so both English and Chinese catalogs are
// maintained.
type Messages struct {
	ProcessedFile  string // confirmation after an in-place rewrite, takes the path
	UnchangedFile  string // in-place mode, file needed no edits
	NoFiles        string
	FileBanner     string // stdout batch mode separator, takes the path
	ProblemsHeader string
	HeaderFile     string
	HeaderFuncs    string
	HeaderInserted string
	HeaderSkipped  string
	HeaderKept     string
	FooterTotal    string // takes the file count
	ReportSaved    string // takes the report path
	ReviewNoEdits  string
}

var catalogs = map[string]Messages{
	"en": {
		ProcessedFile:  "Processed: %s\n",
		UnchangedFile:  "Unchanged: %s\n",
		NoFiles:        "No .conf files found",
		FileBanner:     "# === File: %s ===\n",
		ProblemsHeader: "Problems:",
		HeaderFile:     "File",
		HeaderFuncs:    "Functions",
		HeaderInserted: "Annotated",
		HeaderSkipped:  "Skipped",
		HeaderKept:     "Kept",
		FooterTotal:    "Total Files %d",
		ReportSaved:    "Report saved: %s\n",
		ReviewNoEdits:  "No insertions planned",
	},
	"zh": {
		ProcessedFile:  "已处理文件: %s\n",
		UnchangedFile:  "无需修改: %s\n",
		NoFiles:        "未找到 .conf 文件",
		FileBanner:     "# === 文件: %s ===\n",
		ProblemsHeader: "问题:",
		HeaderFile:     "文件",
		HeaderFuncs:    "函数",
		HeaderInserted: "已补全",
		HeaderSkipped:  "已跳过",
		HeaderKept:     "保持不变",
		FooterTotal:    "共 %d 个文件",
		ReportSaved:    "报告已保存: %s\n",
		ReviewNoEdits:  "无待插入的类型标注",
	},
}

// DetectMessages picks the Chinese catalog when the locale environment
// mentions Chinese, English otherwise. getenv is injected so detection can
// be tested without mutating the process environment.
func DetectMessages(getenv func(string) string) Messages {
	for _, v := range []string{"LANG", "LC_ALL", "LC_MESSAGES"} {
		value := strings.ToLower(getenv(v))
		if strings.Contains(value, "zh") || strings.Contains(value, "cn") {
			return catalogs["zh"]
		}
	}

	return catalogs["en"]
}
