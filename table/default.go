// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package table

// defaultEntries is the hand-maintained state to command mapping.
// vk.xml does not record which commands set which dynamic state.
var defaultEntries = []Entry{
	{State: "VK_DYNAMIC_STATE_VIEWPORT", Commands: []string{"vkCmdSetViewport"}},
	{State: "VK_DYNAMIC_STATE_SCISSOR", Commands: []string{"vkCmdSetScissor"}},
	{State: "VK_DYNAMIC_STATE_LINE_WIDTH", Commands: []string{"vkCmdSetLineWidth"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_BIAS", Commands: []string{"vkCmdSetDepthBias", "vkCmdSetDepthBias2EXT"}},
	{State: "VK_DYNAMIC_STATE_BLEND_CONSTANTS", Commands: []string{"vkCmdSetBlendConstants"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_BOUNDS", Commands: []string{"vkCmdSetDepthBounds"}},
	{State: "VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK", Commands: []string{"vkCmdSetStencilCompareMask"}},
	{State: "VK_DYNAMIC_STATE_STENCIL_WRITE_MASK", Commands: []string{"vkCmdSetStencilWriteMask"}},
	{State: "VK_DYNAMIC_STATE_STENCIL_REFERENCE", Commands: []string{"vkCmdSetStencilReference"}},
	{State: "VK_DYNAMIC_STATE_CULL_MODE", Commands: []string{"vkCmdSetCullMode"}},
	{State: "VK_DYNAMIC_STATE_FRONT_FACE", Commands: []string{"vkCmdSetFrontFace"}},
	{State: "VK_DYNAMIC_STATE_PRIMITIVE_TOPOLOGY", Commands: []string{"vkCmdSetPrimitiveTopology"}},
	{State: "VK_DYNAMIC_STATE_VIEWPORT_WITH_COUNT", Commands: []string{"vkCmdSetViewportWithCount"}},
	{State: "VK_DYNAMIC_STATE_SCISSOR_WITH_COUNT", Commands: []string{"vkCmdSetScissorWithCount"}},
	{State: "VK_DYNAMIC_STATE_VERTEX_INPUT_BINDING_STRIDE", Commands: []string{"vkCmdBindVertexBuffers2"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_TEST_ENABLE", Commands: []string{"vkCmdSetDepthTestEnable"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_WRITE_ENABLE", Commands: []string{"vkCmdSetDepthWriteEnable"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_COMPARE_OP", Commands: []string{"vkCmdSetDepthCompareOp"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_BOUNDS_TEST_ENABLE", Commands: []string{"vkCmdSetDepthBoundsTestEnable"}},
	{State: "VK_DYNAMIC_STATE_STENCIL_TEST_ENABLE", Commands: []string{"vkCmdSetStencilTestEnable"}},
	{State: "VK_DYNAMIC_STATE_STENCIL_OP", Commands: []string{"vkCmdSetStencilOp"}},
	{State: "VK_DYNAMIC_STATE_RASTERIZER_DISCARD_ENABLE", Commands: []string{"vkCmdSetRasterizerDiscardEnable"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_BIAS_ENABLE", Commands: []string{"vkCmdSetDepthBiasEnable"}},
	{State: "VK_DYNAMIC_STATE_PRIMITIVE_RESTART_ENABLE", Commands: []string{"vkCmdSetPrimitiveRestartEnable"}},
	{State: "VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV", Commands: []string{"vkCmdSetViewportWScalingNV"}},
	{State: "VK_DYNAMIC_STATE_DISCARD_RECTANGLE_EXT", Commands: []string{"vkCmdSetDiscardRectangleEXT"}},
	{State: "VK_DYNAMIC_STATE_DISCARD_RECTANGLE_ENABLE_EXT", Commands: []string{"vkCmdSetDiscardRectangleEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_DISCARD_RECTANGLE_MODE_EXT", Commands: []string{"vkCmdSetDiscardRectangleModeEXT"}},
	{State: "VK_DYNAMIC_STATE_SAMPLE_LOCATIONS_EXT", Commands: []string{"vkCmdSetSampleLocationsEXT"}},
	{State: "VK_DYNAMIC_STATE_VIEWPORT_SHADING_RATE_PALETTE_NV", Commands: []string{"vkCmdSetViewportShadingRatePaletteNV"}},
	{State: "VK_DYNAMIC_STATE_VIEWPORT_COARSE_SAMPLE_ORDER_NV", Commands: []string{"vkCmdSetCoarseSampleOrderNV"}},
	{State: "VK_DYNAMIC_STATE_EXCLUSIVE_SCISSOR_ENABLE_NV", Commands: []string{"vkCmdSetExclusiveScissorEnableNV"}},
	{State: "VK_DYNAMIC_STATE_EXCLUSIVE_SCISSOR_NV", Commands: []string{"vkCmdSetExclusiveScissorNV"}},
	{State: "VK_DYNAMIC_STATE_FRAGMENT_SHADING_RATE_KHR", Commands: []string{"vkCmdSetFragmentShadingRateKHR"}},
	{State: "VK_DYNAMIC_STATE_LINE_STIPPLE_KHR", Commands: []string{"vkCmdSetLineStippleKHR"}},
	{State: "VK_DYNAMIC_STATE_VERTEX_INPUT_EXT", Commands: []string{"vkCmdSetVertexInputEXT"}},
	{State: "VK_DYNAMIC_STATE_PATCH_CONTROL_POINTS_EXT", Commands: []string{"vkCmdSetPatchControlPointsEXT"}},
	{State: "VK_DYNAMIC_STATE_LOGIC_OP_EXT", Commands: []string{"vkCmdSetLogicOpEXT"}},
	{State: "VK_DYNAMIC_STATE_COLOR_WRITE_ENABLE_EXT", Commands: []string{"vkCmdSetColorWriteEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_TESSELLATION_DOMAIN_ORIGIN_EXT", Commands: []string{"vkCmdSetTessellationDomainOriginEXT"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_CLAMP_ENABLE_EXT", Commands: []string{"vkCmdSetDepthClampEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_POLYGON_MODE_EXT", Commands: []string{"vkCmdSetPolygonModeEXT"}},
	{State: "VK_DYNAMIC_STATE_RASTERIZATION_SAMPLES_EXT", Commands: []string{"vkCmdSetRasterizationSamplesEXT"}},
	{State: "VK_DYNAMIC_STATE_SAMPLE_MASK_EXT", Commands: []string{"vkCmdSetSampleMaskEXT"}},
	{State: "VK_DYNAMIC_STATE_ALPHA_TO_COVERAGE_ENABLE_EXT", Commands: []string{"vkCmdSetAlphaToCoverageEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_ALPHA_TO_ONE_ENABLE_EXT", Commands: []string{"vkCmdSetAlphaToOneEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_LOGIC_OP_ENABLE_EXT", Commands: []string{"vkCmdSetLogicOpEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_COLOR_BLEND_ENABLE_EXT", Commands: []string{"vkCmdSetColorBlendEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_COLOR_BLEND_EQUATION_EXT", Commands: []string{"vkCmdSetColorBlendEquationEXT"}},
	{State: "VK_DYNAMIC_STATE_COLOR_WRITE_MASK_EXT", Commands: []string{"vkCmdSetColorWriteMaskEXT"}},
	{State: "VK_DYNAMIC_STATE_RASTERIZATION_STREAM_EXT", Commands: []string{"vkCmdSetRasterizationStreamEXT"}},
	{State: "VK_DYNAMIC_STATE_CONSERVATIVE_RASTERIZATION_MODE_EXT", Commands: []string{"vkCmdSetConservativeRasterizationModeEXT"}},
	{State: "VK_DYNAMIC_STATE_EXTRA_PRIMITIVE_OVERESTIMATION_SIZE_EXT", Commands: []string{"vkCmdSetExtraPrimitiveOverestimationSizeEXT"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_CLIP_ENABLE_EXT", Commands: []string{"vkCmdSetDepthClipEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_SAMPLE_LOCATIONS_ENABLE_EXT", Commands: []string{"vkCmdSetSampleLocationsEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_COLOR_BLEND_ADVANCED_EXT", Commands: []string{"vkCmdSetColorBlendAdvancedEXT"}},
	{State: "VK_DYNAMIC_STATE_PROVOKING_VERTEX_MODE_EXT", Commands: []string{"vkCmdSetProvokingVertexModeEXT"}},
	{State: "VK_DYNAMIC_STATE_LINE_RASTERIZATION_MODE_EXT", Commands: []string{"vkCmdSetLineRasterizationModeEXT"}},
	{State: "VK_DYNAMIC_STATE_LINE_STIPPLE_ENABLE_EXT", Commands: []string{"vkCmdSetLineStippleEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_DEPTH_CLIP_NEGATIVE_ONE_TO_ONE_EXT", Commands: []string{"vkCmdSetDepthClipNegativeOneToOneEXT"}},
	{State: "VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_ENABLE_NV", Commands: []string{"vkCmdSetViewportWScalingEnableNV"}},
	{State: "VK_DYNAMIC_STATE_VIEWPORT_SWIZZLE_NV", Commands: []string{"vkCmdSetViewportSwizzleNV"}},
	{State: "VK_DYNAMIC_STATE_COVERAGE_TO_COLOR_ENABLE_NV", Commands: []string{"vkCmdSetCoverageToColorEnableNV"}},
	{State: "VK_DYNAMIC_STATE_COVERAGE_TO_COLOR_LOCATION_NV", Commands: []string{"vkCmdSetCoverageToColorLocationNV"}},
	{State: "VK_DYNAMIC_STATE_COVERAGE_MODULATION_MODE_NV", Commands: []string{"vkCmdSetCoverageModulationModeNV"}},
	{State: "VK_DYNAMIC_STATE_COVERAGE_MODULATION_TABLE_ENABLE_NV", Commands: []string{"vkCmdSetCoverageModulationTableEnableNV"}},
	{State: "VK_DYNAMIC_STATE_COVERAGE_MODULATION_TABLE_NV", Commands: []string{"vkCmdSetCoverageModulationTableNV"}},
	{State: "VK_DYNAMIC_STATE_SHADING_RATE_IMAGE_ENABLE_NV", Commands: []string{"vkCmdSetShadingRateImageEnableNV"}},
	{State: "VK_DYNAMIC_STATE_REPRESENTATIVE_FRAGMENT_TEST_ENABLE_NV", Commands: []string{"vkCmdSetRepresentativeFragmentTestEnableNV"}},
	{State: "VK_DYNAMIC_STATE_COVERAGE_REDUCTION_MODE_NV", Commands: []string{"vkCmdSetCoverageReductionModeNV"}},
	{State: "VK_DYNAMIC_STATE_ATTACHMENT_FEEDBACK_LOOP_ENABLE_EXT", Commands: []string{"vkCmdSetAttachmentFeedbackLoopEnableEXT"}},
	{State: "VK_DYNAMIC_STATE_RAY_TRACING_PIPELINE_STACK_SIZE_KHR", Commands: []string{"vkCmdSetRayTracingPipelineStackSizeKHR"}},
}
