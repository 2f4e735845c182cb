package ral

// i.MX RT1010 register map. Only the registers bring-up and the board
// peripherals touch are listed.

const (
	CCMBase       Register = 0x400F_C000
	CCMAnalogBase Register = 0x400D_8000
	DCDCBase      Register = 0x4008_0000
)

// CCM.
const (
	CCM_CBCDR  = CCMBase + 0x14
	CCM_CBCMR  = CCMBase + 0x18
	CCM_CSCMR1 = CCMBase + 0x1C
	CCM_CSCDR1 = CCMBase + 0x24
	CCM_CSCDR2 = CCMBase + 0x38
	CCM_CDHIPR = CCMBase + 0x48
	CCM_CLPCR  = CCMBase + 0x54
	CCM_CCGR0  = CCMBase + 0x68
	CCM_CCGR1  = CCMBase + 0x6C
	CCM_CCGR2  = CCMBase + 0x70
	CCM_CCGR3  = CCMBase + 0x74
	CCM_CCGR4  = CCMBase + 0x78
	CCM_CCGR5  = CCMBase + 0x7C
	CCM_CCGR6  = CCMBase + 0x80
)

// CCM_ANALOG.
const (
	CCM_ANALOG_PLL_ENET = CCMAnalogBase + 0xE0
)

// DCDC.
const (
	DCDC_REG0 = DCDCBase + 0x00
	DCDC_REG3 = DCDCBase + 0x0C
)

// Peripheral instance base addresses.
const (
	DMA0Base    Register = 0x400E_8000
	PITBase     Register = 0x400D_C000
	GPT1Base    Register = 0x401E_C000
	GPT2Base    Register = 0x401F_0000
	GPIO1Base   Register = 0x401B_8000
	GPIO2Base   Register = 0x401B_C000
	LPUART1Base Register = 0x4018_4000
	LPUART2Base Register = 0x4018_8000
	LPUART3Base Register = 0x4018_C000
	LPUART4Base Register = 0x4019_0000
	LPSPI1Base  Register = 0x4019_4000
	LPSPI2Base  Register = 0x4019_8000
	LPI2C1Base  Register = 0x401A_4000
	LPI2C2Base  Register = 0x401A_8000
)

var names = map[Register]string{
	CCM_CBCDR:           "CCM_CBCDR",
	CCM_CBCMR:           "CCM_CBCMR",
	CCM_CSCMR1:          "CCM_CSCMR1",
	CCM_CSCDR1:          "CCM_CSCDR1",
	CCM_CSCDR2:          "CCM_CSCDR2",
	CCM_CDHIPR:          "CCM_CDHIPR",
	CCM_CLPCR:           "CCM_CLPCR",
	CCM_CCGR0:           "CCM_CCGR0",
	CCM_CCGR1:           "CCM_CCGR1",
	CCM_CCGR2:           "CCM_CCGR2",
	CCM_CCGR3:           "CCM_CCGR3",
	CCM_CCGR4:           "CCM_CCGR4",
	CCM_CCGR5:           "CCM_CCGR5",
	CCM_CCGR6:           "CCM_CCGR6",
	CCM_ANALOG_PLL_ENET: "CCM_ANALOG_PLL_ENET",
	DCDC_REG0:           "DCDC_REG0",
	DCDC_REG3:           "DCDC_REG3",
}
