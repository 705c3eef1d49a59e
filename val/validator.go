// Package val 提供注册和发布岗位时的字段校验
// 校验在记录进入匹配引擎之前完成，引擎假定输入已通过校验
package val

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneStripRegex = regexp.MustCompile(`[\s\-()+]`)
	digitsRegex     = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateString 通用长度校验
func ValidateString(value string, minLength, maxLength int) error {
	n := len(strings.TrimSpace(value))
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain %d-%d characters", minLength, maxLength)
	}
	return nil
}

// ValidateFullName 姓名：非空且不超过 100 字符
func ValidateFullName(name string) error {
	if err := ValidateString(name, 1, 100); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	return nil
}

// ValidatePhone 电话：去掉空格、横线、括号、加号后是 10-15 位数字
func ValidatePhone(phone string) error {
	cleaned := phoneStripRegex.ReplaceAllString(phone, "")
	if !digitsRegex.MatchString(cleaned) {
		return fmt.Errorf("phone must contain only digits and separators")
	}
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return fmt.Errorf("phone must contain 10-15 digits")
	}
	return nil
}

// ValidateEmail 邮箱格式
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateLocation 位置：非空且不超过 200 字符
// 这里不区分坐标和文本，坐标识别是匹配引擎的事
func ValidateLocation(location string) error {
	if err := ValidateString(location, 1, 200); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}
	return nil
}

// ValidateSkills 技能列表：逗号分隔，至少包含一个非空技能
func ValidateSkills(skills string) error {
	for _, s := range strings.Split(skills, ",") {
		if strings.TrimSpace(s) != "" {
			return nil
		}
	}
	return fmt.Errorf("at least one skill is required")
}

// ValidatePassword 密码长度
func ValidatePassword(password string) error {
	if err := ValidateString(password, 6, 64); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return nil
}
