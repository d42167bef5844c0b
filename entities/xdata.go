package entities

import (
	"strings"

	"github.com/yk35/netDXF/core"
	"github.com/yk35/netDXF/tables"
)

// ExtendedData 某个应用程序名下的扩展数据，按出现顺序保存原始 (组码, 值)
type ExtendedData struct {
	AppReg  *tables.AppReg
	Records []core.Tag
}

// ExtendedData 按应用程序名查找扩展数据
func (b *BaseEntity) ExtendedData(app string) (*ExtendedData, bool) {
	for _, x := range b.XData {
		if strings.EqualFold(x.AppReg.Name, app) {
			return x, true
		}
	}
	return nil, false
}

// readXData 进入时当前标签为 (1001, 应用名)，读到下一个 1001 或范围外的组码为止。
// 同一应用名的多段数据追加到先出现的那一段。
func (b *BaseEntity) readXData(s *Session) error {
	app := s.Tables.AppReg(s.Tag().AsString())
	var x *ExtendedData
	for _, old := range b.XData {
		if old.AppReg == app {
			x = old
			break
		}
	}
	if x == nil {
		x = &ExtendedData{AppReg: app}
		b.XData = append(b.XData, x)
	}
	for s.Next() {
		t := s.Tag()
		if t.Code == 1001 || !core.IsXData(t.Code) {
			break
		}
		x.Records = append(x.Records, t)
	}
	return s.Scanner.Err()
}
