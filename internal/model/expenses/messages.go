package expenses

type messageKey int

const (
	msgSaveFailed messageKey = iota
	msgUpdateFailed
	msgDeleteFailed
	msgLoadFailed
	msgBreakdownFailed
	msgMonthlyTrendFailed
	msgYearlyTrendFailed
	msgSummaryFailed
	msgPeriodExpensesFailed
	msgDecodeFailed
)

const defaultLocale = "en"

var catalog = map[string]map[messageKey]string{
	"en": {
		msgSaveFailed:           "Failed to save the expense, please retry",
		msgUpdateFailed:         "Failed to update the expense, please retry",
		msgDeleteFailed:         "Failed to delete the expense, please retry",
		msgLoadFailed:           "Failed to load expenses",
		msgBreakdownFailed:      "Failed to load the category breakdown",
		msgMonthlyTrendFailed:   "Failed to load the monthly trend",
		msgYearlyTrendFailed:    "Failed to load the yearly trend",
		msgSummaryFailed:        "Failed to load the period summary",
		msgPeriodExpensesFailed: "Failed to load expenses for the period",
		msgDecodeFailed:         "Received malformed data from the server",
	},
	"zh-CN": {
		msgSaveFailed:           "保存失败，请重试",
		msgUpdateFailed:         "更新失败，请重试",
		msgDeleteFailed:         "删除失败，请重试",
		msgLoadFailed:           "加载支出失败",
		msgBreakdownFailed:      "加载分类统计失败",
		msgMonthlyTrendFailed:   "加载月度趋势失败",
		msgYearlyTrendFailed:    "加载年度趋势失败",
		msgSummaryFailed:        "加载期间汇总失败",
		msgPeriodExpensesFailed: "加载期间支出失败",
		msgDecodeFailed:         "服务器返回的数据无效",
	},
}

func localize(locale string, key messageKey) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return catalog[defaultLocale][key]
}
