package view

import "math"

// PackItem 气泡图的一项
type PackItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Circle 布局后的气泡，X/Y 为左上角坐标
type Circle struct {
	PackItem
	Size float64 `json:"size"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// TotalLabel 中心汇总气泡的名称
const TotalLabel = "전체"

// CirclePack 围绕中心点环形排列气泡，半径按最大值线性缩放，最后追加一个汇总气泡
func CirclePack(items []PackItem, width, height float64) []Circle {
	if len(items) == 0 {
		return nil
	}
	centerX := width * 0.8
	centerY := height * 0.65
	short := math.Min(width, height)

	maxValue := 0.0
	total := 0.0
	for _, it := range items {
		maxValue = math.Max(maxValue, it.Value)
		total += it.Value
	}
	maxRadius := short * 0.35
	minRadius := maxRadius * 0.2
	distance := short * 0.4

	circles := make([]Circle, 0, len(items)+1)
	for i, it := range items {
		radius := minRadius
		if maxValue > 0 {
			radius += (maxRadius - minRadius) * (it.Value / maxValue)
		}
		angle := float64(i) * 2 * math.Pi / float64(len(items))
		circles = append(circles, Circle{
			PackItem: it,
			Size:     radius * 2,
			X:        centerX + math.Cos(angle)*distance - radius,
			Y:        centerY + math.Sin(angle)*distance - radius,
		})
	}

	centerSize := maxRadius * 1.4
	circles = append(circles, Circle{
		PackItem: PackItem{Name: TotalLabel, Value: total, Color: "#c7d2fe"},
		Size:     centerSize,
		X:        centerX - centerSize/2,
		Y:        centerY - centerSize/2,
	})
	return circles
}
