package generalutils

import (
	"fmt"
	"os/exec"
)

type GeneralUtilsInterface interface {
	CheckAWSCLI(binary string) error
}

type DefaultGeneralUtilsManager struct{}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

func (d *DefaultGeneralUtilsManager) CheckAWSCLI(binary string) error {
	_, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("AWS CLI not found: %w", err)
	}
	return nil
}
