package tui

import (
	"slices"

	"keyword-monitor/pkg/model"
	"keyword-monitor/pkg/render"
)

// nextRoute 在侧边栏菜单中循环，分组看板视为新闻监控
func nextRoute(current render.Route, step int) render.Route {
	if current == render.RouteKeyword {
		current = render.RouteNews
	}
	n := len(render.NavItems)
	idx := slices.IndexFunc(render.NavItems, func(item render.NavItem) bool { return item.Route == current })
	if idx < 0 {
		return render.NavItems[0].Route
	}
	return render.NavItems[((idx+step)%n+n)%n].Route
}

// nextClassification 人工分类循环：보도자료 → 오가닉 → 해당없음 → 보도자료，未分类从보도자료开始
func nextClassification(c model.Classification) model.Classification {
	all := model.ManualClassifications
	idx := slices.Index(all, c)
	return all[(idx+1)%len(all)]
}

// cycle 空值 → 第一个 → ... → 最后一个 → 空值
func cycle(values []string, current string) string {
	if len(values) == 0 {
		return ""
	}
	idx := slices.Index(values, current)
	if current == "" || idx < 0 {
		return values[0]
	}
	if idx == len(values)-1 {
		return ""
	}
	return values[idx+1]
}
