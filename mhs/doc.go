// Package mhs models hardware block descriptors: the Xilinx MHS project
// file and the MSS board support file, which share one syntax.
//
// A File is a list of global attributes followed by an ordered list of
// blocks. A Block has a type name and an ordered list of attributes; every
// attribute is a PARAMETER, PORT or BUS_INTERFACE line holding one or more
// assignments:
//
//	BEGIN axi_gpio
//	 PARAMETER INSTANCE = Push_Buttons_5Bits
//	 PARAMETER C_GPIO_WIDTH = 5
//	 BUS_INTERFACE S_AXI = axi4lite_0
//	 PORT GPIO_IO_I = Push_Buttons_5Bits_TRI_I
//	END
//
// Like the ir package, every builder method returns an updated value and
// leaves the receiver untouched.
package mhs
